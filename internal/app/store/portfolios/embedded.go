// internal/app/store/portfolios/embedded.go
package portfoliostore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/store/subdoc"
	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PushComment appends the comment to the portfolio's comment array and
// returns the updated portfolio. The comment's id and timestamps are
// assigned here.
func (s *Store) PushComment(ctx context.Context, id primitive.ObjectID, c models.Comment) (*models.Portfolio, error) {
	c.ID = primitive.NewObjectID()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	p, err := s.comments.Push(ctx, id, c)
	if errors.Is(err, subdoc.ErrParentNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "adding comment to portfolio")
	}
	return p, nil
}

// PullComment removes the comment with the given id. Removing an id
// that is not present leaves the array unchanged; only a missing
// portfolio is an error.
func (s *Store) PullComment(ctx context.Context, id, commentID primitive.ObjectID) (*models.Portfolio, error) {
	p, err := s.comments.Pull(ctx, id, commentID)
	if errors.Is(err, subdoc.ErrParentNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "removing comment from portfolio")
	}
	return p, nil
}

// SetCommentContent replaces the comment's content in place, preserving
// its id and position. A missing portfolio and a missing comment report
// distinct NotFound errors.
func (s *Store) SetCommentContent(ctx context.Context, id, commentID primitive.ObjectID, content string) (*models.Portfolio, error) {
	fields := bson.M{"content": content, "updated_at": time.Now()}

	p, err := s.comments.Set(ctx, id, commentID, fields)
	switch {
	case errors.Is(err, subdoc.ErrParentNotFound):
		return nil, notFound(id)
	case errors.Is(err, subdoc.ErrElementNotFound):
		return nil, apperr.NotFoundf("comment %s does not exist on portfolio %s", commentID.Hex(), id.Hex())
	case err != nil:
		return nil, apperr.Storef(err, "updating comment on portfolio")
	}
	return p, nil
}

// PushMentoringRequest appends a request in its initial "requested"
// state and returns the updated portfolio.
func (s *Store) PushMentoringRequest(ctx context.Context, id primitive.ObjectID, r models.MentoringRequest) (*models.Portfolio, error) {
	r.ID = primitive.NewObjectID()
	r.Status = models.MentoringRequested
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now

	p, err := s.requests.Push(ctx, id, r)
	if errors.Is(err, subdoc.ErrParentNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "adding mentoring request to portfolio")
	}
	return p, nil
}

// SetMentoringRequestStatus overwrites the request's status (and, when
// non-empty, its response message) in place. The transition itself is
// not validated here; callers own that policy.
func (s *Store) SetMentoringRequestStatus(ctx context.Context, id, requestID primitive.ObjectID, status models.MentoringStatus, message string) (*models.Portfolio, error) {
	fields := bson.M{"status": status, "updated_at": time.Now()}
	if message != "" {
		fields["message"] = message
	}

	p, err := s.requests.Set(ctx, id, requestID, fields)
	switch {
	case errors.Is(err, subdoc.ErrParentNotFound):
		return nil, notFound(id)
	case errors.Is(err, subdoc.ErrElementNotFound):
		return nil, apperr.NotFoundf("mentoring request %s does not exist on portfolio %s", requestID.Hex(), id.Hex())
	case err != nil:
		return nil, apperr.Storef(err, "updating mentoring request")
	}
	return p, nil
}
