// internal/app/services/portfolio/comments.go
package portfoliosvc

import (
	"context"

	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mentorhub/internal/app/system/paging"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddComment appends a comment to the portfolio and returns the updated
// aggregate. The comment's id and timestamps are assigned by the store.
func (s *Service) AddComment(ctx context.Context, id primitive.ObjectID, c models.Comment) (*models.Portfolio, error) {
	c.Content = htmlsanitize.SanitizeTrimmed(c.Content)
	if c.Content == "" {
		return nil, &apperr.ValidationError{Fields: []string{"content"}}
	}
	if c.OwnerID.IsZero() {
		return nil, &apperr.ValidationError{Fields: []string{"owner_id"}}
	}
	return s.store.PushComment(ctx, id, c)
}

// RemoveComment deletes the comment with the given id. Removing an id
// that is not present is a no-op, not an error: the remaining sequence
// is returned unchanged.
func (s *Service) RemoveComment(ctx context.Context, id, commentID primitive.ObjectID) (*models.Portfolio, error) {
	return s.store.PullComment(ctx, id, commentID)
}

// UpdateComment replaces the comment's content in place, preserving its
// id and position in the sequence.
func (s *Service) UpdateComment(ctx context.Context, id, commentID primitive.ObjectID, content string) (*models.Portfolio, error) {
	content = htmlsanitize.SanitizeTrimmed(content)
	if content == "" {
		return nil, &apperr.ValidationError{Fields: []string{"content"}}
	}
	return s.store.SetCommentContent(ctx, id, commentID, content)
}

// Comments returns one window of the portfolio's comment sequence, in
// insertion order, plus the total comment count.
func (s *Service) Comments(ctx context.Context, id primitive.ObjectID, limit, skip int64) ([]models.Comment, int64, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	page, total := paging.Slice(p.Comments, limit, skip)
	return page, total, nil
}
