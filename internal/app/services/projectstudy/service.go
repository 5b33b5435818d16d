// internal/app/services/projectstudy/service.go

// Package projectstudysvc orchestrates ProjectStudy aggregates: CRUD
// with payload validation, classification/position filtering, embedded
// comment management with owner notification, and latest-post queries.
package projectstudysvc

import (
	"context"

	projectstudystore "github.com/dalemusser/mentorhub/internal/app/store/projectstudies"
	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mentorhub/internal/app/system/inputval"
	"github.com/dalemusser/mentorhub/internal/app/system/paging"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// LatestLimit bounds the "newest posts" queries.
const LatestLimit = 8

// Notifier is the fire-and-forget notification sink; a failed write is
// logged and never rolled back against the operation that emitted it.
type Notifier interface {
	Create(ctx context.Context, n models.Notification) (models.Notification, error)
}

// UserDirectory resolves user attributes owned by the account service.
type UserDirectory interface {
	GetPositionByID(ctx context.Context, id primitive.ObjectID) (string, error)
}

type Service struct {
	store *projectstudystore.Store
	notes Notifier
	users UserDirectory
	log   *zap.Logger
}

func New(store *projectstudystore.Store, notes Notifier, users UserDirectory, logger *zap.Logger) *Service {
	return &Service{store: store, notes: notes, users: users, log: logger}
}

// Create validates the payload, sanitizes user-entered text, and
// persists a new post.
func (s *Service) Create(ctx context.Context, ps models.ProjectStudy) (models.ProjectStudy, error) {
	if err := inputval.ValidateProjectStudy(ps); err != nil {
		return models.ProjectStudy{}, err
	}
	ps.Description = htmlsanitize.Sanitize(ps.Description)

	created, err := s.store.Create(ctx, ps)
	if err != nil {
		return models.ProjectStudy{}, err
	}
	s.log.Info("project/study post created",
		zap.String("post_id", created.ID.Hex()),
		zap.String("classification", created.Classification))
	return created, nil
}

// Get loads a post by id.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.ProjectStudy, error) {
	return s.store.GetByID(ctx, id)
}

// GetByTitle loads a post by its exact title.
func (s *Service) GetByTitle(ctx context.Context, title string) (*models.ProjectStudy, error) {
	ps, err := s.store.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, apperr.NotFoundf("no project/study post titled %q", title)
	}
	return ps, nil
}

// GetByOwner lists the owner's posts, newest first. No posts is an
// empty list, not an error.
func (s *Service) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.ProjectStudy, error) {
	return s.store.GetByOwnerID(ctx, ownerID)
}

// Filter narrows a post list. Both dimensions are independent; an
// unset dimension does not constrain the query.
type Filter struct {
	Classification string
	Position       string
}

// List returns one page of posts matching the filter plus the total
// count.
func (s *Service) List(ctx context.Context, f Filter, p paging.Params) ([]models.ProjectStudy, int64, error) {
	if f.Classification != "" && !models.IsValidClassification(f.Classification) {
		return nil, 0, apperr.InvalidArgumentf("unrecognized classification %q", f.Classification)
	}
	return s.store.List(ctx, projectstudystore.ListFilter{
		Classification: f.Classification,
		Position:       f.Position,
	}, p)
}

// Update patches the named fields and returns the updated post.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, upd projectstudystore.Update) (*models.ProjectStudy, error) {
	if upd.Classification != nil && !models.IsValidClassification(*upd.Classification) {
		return nil, apperr.InvalidArgumentf("unrecognized classification %q", *upd.Classification)
	}
	if upd.RecruitsStatus != nil &&
		*upd.RecruitsStatus != models.Recruiting && *upd.RecruitsStatus != models.RecruitingClosed {
		return nil, apperr.InvalidArgumentf("unrecognized recruiting status %q", *upd.RecruitsStatus)
	}
	if upd.Description != nil {
		clean := htmlsanitize.Sanitize(*upd.Description)
		upd.Description = &clean
	}
	return s.store.Update(ctx, id, upd)
}

// Delete removes the post together with its embedded comments.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) (*models.ProjectStudy, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("project/study post deleted", zap.String("post_id", id.Hex()))
	return deleted, nil
}

// Latest returns the newest posts, most recent first.
func (s *Service) Latest(ctx context.Context) ([]models.ProjectStudy, error) {
	return s.store.Latest(ctx, LatestLimit)
}

// LatestByPosition returns the newest posts for one position tag. When
// userID is non-nil the position is resolved from that user's profile
// instead of the position argument.
func (s *Service) LatestByPosition(ctx context.Context, userID *primitive.ObjectID, position string) ([]models.ProjectStudy, error) {
	if userID != nil {
		resolved, err := s.users.GetPositionByID(ctx, *userID)
		if err != nil {
			return nil, apperr.Lookupf(err, "resolving position for user %s", userID.Hex())
		}
		position = resolved
	}
	if position == "" {
		return nil, apperr.Lookupf(nil, "no position to filter by")
	}
	return s.store.LatestByPosition(ctx, position, LatestLimit)
}

// Positions flattens every post's position tags into one deduplicated
// set.
func (s *Service) Positions(ctx context.Context) ([]string, error) {
	return s.store.DistinctPositions(ctx)
}
