// internal/app/system/paging/paging.go

// Package paging builds limit/skip/sort query parameters and returns
// (items, totalCount) pairs: one bounded Find plus one CountDocuments
// per page. No upper bound is enforced on Limit here; callers pass sane
// values.
package paging

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit is used by transport handlers when the caller does not
// ask for a specific page size.
const DefaultLimit = 10

// NewestFirst sorts by creation time descending, with _id as the
// tie-break so equal timestamps still page deterministically.
func NewestFirst() bson.D {
	return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
}

// Params holds the page window and sort order for a list query.
type Params struct {
	Limit int64
	Skip  int64
	Sort  bson.D // defaults to NewestFirst when empty
}

func (p Params) findOptions() *options.FindOptions {
	opts := options.Find()
	sort := p.Sort
	if len(sort) == 0 {
		sort = NewestFirst()
	}
	opts.SetSort(sort)
	if p.Limit > 0 {
		opts.SetLimit(p.Limit)
	}
	if p.Skip > 0 {
		opts.SetSkip(p.Skip)
	}
	return opts
}

// FindPage runs the bounded query and the matching count against the
// same filter and returns both. The returned slice is never nil.
func FindPage[T any](ctx context.Context, c *mongo.Collection, filter bson.M, p Params) ([]T, int64, error) {
	if filter == nil {
		filter = bson.M{}
	}

	total, err := c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cur, err := c.Find(ctx, filter, p.findOptions())
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Slice pages an in-memory list (an embedded array loaded with its
// parent document) with the same limit/skip semantics, returning the
// window and the total length. A non-positive limit means "the rest".
func Slice[T any](list []T, limit, skip int64) ([]T, int64) {
	total := int64(len(list))

	if skip < 0 {
		skip = 0
	}
	if skip >= total {
		return []T{}, total
	}

	end := total
	if limit > 0 && skip+limit < total {
		end = skip + limit
	}

	out := make([]T, end-skip)
	copy(out, list[skip:end])
	return out, total
}
