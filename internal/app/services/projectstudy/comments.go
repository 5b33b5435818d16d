// internal/app/services/projectstudy/comments.go

package projectstudysvc

import (
	"context"

	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mentorhub/internal/app/system/paging"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const commentNotificationText = "a new comment was posted on your project/study post"

// AddComment appends a comment to the post and notifies the post owner.
// A failed notification write is logged and does not fail the comment.
func (s *Service) AddComment(ctx context.Context, postID primitive.ObjectID, c models.Comment) (*models.ProjectStudy, error) {
	c.Content = htmlsanitize.SanitizeTrimmed(c.Content)

	if c.Content == "" {
		return nil, &apperr.ValidationError{Fields: []string{"content"}}
	}
	if c.OwnerID.IsZero() {
		return nil, &apperr.ValidationError{Fields: []string{"owner_id"}}
	}

	ps, err := s.store.PushComment(ctx, postID, c)
	if err != nil {
		return nil, err
	}

	if _, err := s.notes.Create(ctx, models.Notification{
		UserID:         ps.OwnerID,
		Content:        commentNotificationText,
		ProjectStudyID: ps.ID,
	}); err != nil {
		s.log.Warn("comment notification not delivered",
			zap.String("post_id", ps.ID.Hex()),
			zap.String("owner_id", ps.OwnerID.Hex()),
			zap.Error(err))
	}
	return ps, nil
}

// RemoveComment deletes the comment; removing an id that is not present
// leaves the post unchanged.
func (s *Service) RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) (*models.ProjectStudy, error) {
	return s.store.PullComment(ctx, postID, commentID)
}

// UpdateComment replaces the comment's content in place.
func (s *Service) UpdateComment(ctx context.Context, postID, commentID primitive.ObjectID, content string) (*models.ProjectStudy, error) {
	content = htmlsanitize.SanitizeTrimmed(content)
	if content == "" {
		return nil, &apperr.ValidationError{Fields: []string{"content"}}
	}
	return s.store.SetCommentContent(ctx, postID, commentID, content)
}

// Comments returns one window of the post's comments plus the total
// comment count.
func (s *Service) Comments(ctx context.Context, postID primitive.ObjectID, limit, skip int64) ([]models.Comment, int64, error) {
	ps, err := s.store.GetByID(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	items, total := paging.Slice(ps.Comments, limit, skip)
	return items, total, nil
}
