// internal/app/store/subdoc/subdoc.go

// Package subdoc mutates an ordered array of embedded subdocuments
// inside a parent aggregate, keyed by each element's generated _id.
//
// Every mutation is a single atomic update ($push, $pull, or a
// positional $set) rather than a whole-document replace, so two
// concurrent edits to the same parent cannot lose each other's write.
package subdoc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrParentNotFound is returned when the parent aggregate id does
	// not exist in the collection.
	ErrParentNotFound = errors.New("parent document not found")

	// ErrElementNotFound is returned when the parent exists but the
	// embedded element id does not.
	ErrElementNotFound = errors.New("embedded element not found")
)

// Collection mutates one embedded array field on documents of type T.
type Collection[T any] struct {
	c     *mongo.Collection
	field string
}

// New binds a subdocument manager to an array field of the given
// collection, e.g. New[models.Portfolio](c, "comments").
func New[T any](c *mongo.Collection, field string) Collection[T] {
	return Collection[T]{c: c, field: field}
}

func returnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// Push appends elem to the end of the array and returns the updated
// parent. The caller assigns the element's _id and timestamps.
func (s Collection[T]) Push(ctx context.Context, parentID primitive.ObjectID, elem any) (*T, error) {
	update := bson.M{
		"$push": bson.M{s.field: elem},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	var parent T
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": parentID}, update, returnAfter()).Decode(&parent)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrParentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &parent, nil
}

// Pull removes the element whose _id matches elemID, preserving the
// order of the rest. Pulling an id that is not present leaves the array
// unchanged and is not an error; only a missing parent is.
func (s Collection[T]) Pull(ctx context.Context, parentID, elemID primitive.ObjectID) (*T, error) {
	update := bson.M{
		"$pull": bson.M{s.field: bson.M{"_id": elemID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	var parent T
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": parentID}, update, returnAfter()).Decode(&parent)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrParentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &parent, nil
}

// Set overwrites fields of the element whose _id matches elemID, in
// place, preserving its position. fields are element-relative (e.g.
// "content"). A missing parent and a missing element are reported as
// distinct errors.
func (s Collection[T]) Set(ctx context.Context, parentID, elemID primitive.ObjectID, fields bson.M) (*T, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[s.field+".$."+k] = v
	}

	filter := bson.M{"_id": parentID, s.field + "._id": elemID}

	var parent T
	err := s.c.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, returnAfter()).Decode(&parent)
	if err == nil {
		return &parent, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// The combined filter missed; find out which half.
	switch parentErr := s.c.FindOne(ctx, bson.M{"_id": parentID}).Err(); {
	case parentErr == nil:
		return nil, ErrElementNotFound
	case errors.Is(parentErr, mongo.ErrNoDocuments):
		return nil, ErrParentNotFound
	default:
		return nil, parentErr
	}
}
