// internal/app/services/portfolio/service.go

// Package portfoliosvc orchestrates Portfolio aggregates: CRUD with
// payload validation, embedded comment management, the mentoring
// request lifecycle, and mentor ranking queries.
package portfoliosvc

import (
	"context"

	portfoliostore "github.com/dalemusser/mentorhub/internal/app/store/portfolios"
	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mentorhub/internal/app/system/inputval"
	"github.com/dalemusser/mentorhub/internal/app/system/paging"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Ranking query limits.
const (
	TopMentorsLimit           = 4
	TopMentorsByPositionLimit = 5
)

// UserDirectory resolves user attributes owned by the account service.
type UserDirectory interface {
	GetPositionByID(ctx context.Context, id primitive.ObjectID) (string, error)
}

type Service struct {
	store *portfoliostore.Store
	users UserDirectory
	log   *zap.Logger
}

func New(store *portfoliostore.Store, users UserDirectory, logger *zap.Logger) *Service {
	return &Service{store: store, users: users, log: logger}
}

// Create validates the payload, sanitizes user-entered text, and
// persists a new portfolio.
func (s *Service) Create(ctx context.Context, p models.Portfolio) (models.Portfolio, error) {
	if err := inputval.ValidatePortfolio(p); err != nil {
		return models.Portfolio{}, err
	}
	p.Description = htmlsanitize.Sanitize(p.Description)
	p.Career = htmlsanitize.Sanitize(p.Career)

	created, err := s.store.Create(ctx, p)
	if err != nil {
		return models.Portfolio{}, err
	}
	s.log.Info("portfolio created",
		zap.String("portfolio_id", created.ID.Hex()),
		zap.String("owner_id", created.OwnerID.Hex()))
	return created, nil
}

// Get loads a portfolio by id.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Portfolio, error) {
	return s.store.GetByID(ctx, id)
}

// GetByTitle loads a portfolio by its exact title.
func (s *Service) GetByTitle(ctx context.Context, title string) (*models.Portfolio, error) {
	p, err := s.store.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFoundf("no portfolio titled %q", title)
	}
	return p, nil
}

// GetByOwner loads the owner's portfolio.
func (s *Service) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Portfolio, error) {
	p, err := s.store.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFoundf("owner %s has no portfolio", ownerID.Hex())
	}
	return p, nil
}

// List returns one page of portfolios plus the total count, newest
// first by default.
func (s *Service) List(ctx context.Context, p paging.Params) ([]models.Portfolio, int64, error) {
	return s.store.List(ctx, portfoliostore.ListFilter{}, p)
}

// ListByPosition returns one page of portfolios carrying the given
// position tag plus the total count.
func (s *Service) ListByPosition(ctx context.Context, position string, p paging.Params) ([]models.Portfolio, int64, error) {
	if position == "" {
		return nil, 0, apperr.InvalidArgumentf("position must not be empty")
	}
	return s.store.List(ctx, portfoliostore.ListFilter{Position: position}, p)
}

// Update patches the named fields and returns the updated portfolio.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, upd portfoliostore.Update) (*models.Portfolio, error) {
	if upd.Description != nil {
		clean := htmlsanitize.Sanitize(*upd.Description)
		upd.Description = &clean
	}
	if upd.Career != nil {
		clean := htmlsanitize.Sanitize(*upd.Career)
		upd.Career = &clean
	}
	if upd.Status != nil && *upd.Status != models.PortfolioActive && *upd.Status != models.PortfolioClosed {
		return nil, apperr.InvalidArgumentf("unrecognized portfolio status %q", *upd.Status)
	}
	return s.store.Update(ctx, id, upd)
}

// Delete removes the portfolio together with its embedded comments and
// mentoring requests.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) (*models.Portfolio, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("portfolio deleted", zap.String("portfolio_id", id.Hex()))
	return deleted, nil
}

// TopMentors returns the highest-ranked mentor portfolios overall,
// ordered by coaching count then recency.
func (s *Service) TopMentors(ctx context.Context) ([]models.Portfolio, error) {
	return s.store.TopByCoachingCount(ctx, TopMentorsLimit)
}

// TopMentorsByPosition returns the highest-ranked mentors for one
// position tag.
func (s *Service) TopMentorsByPosition(ctx context.Context, position string) ([]models.Portfolio, error) {
	if position == "" {
		return nil, apperr.InvalidArgumentf("position must not be empty")
	}
	return s.store.TopByCoachingCountAndPosition(ctx, position, TopMentorsByPositionLimit)
}

// TopMentorsForUser ranks mentors sharing the requesting user's
// position, resolved through the user directory.
func (s *Service) TopMentorsForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Portfolio, error) {
	position, err := s.users.GetPositionByID(ctx, userID)
	if err != nil {
		return nil, apperr.Lookupf(err, "resolving position for user %s", userID.Hex())
	}
	if position == "" {
		return nil, apperr.Lookupf(nil, "user %s has no position set", userID.Hex())
	}
	return s.store.TopByCoachingCountAndPosition(ctx, position, TopMentorsByPositionLimit)
}
