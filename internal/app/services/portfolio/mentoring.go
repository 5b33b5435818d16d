// internal/app/services/portfolio/mentoring.go
package portfoliosvc

import (
	"context"

	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mentorhub/internal/app/system/paging"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AddMentoringRequest appends a request from userID in its initial
// "requested" state and returns the updated portfolio.
func (s *Service) AddMentoringRequest(ctx context.Context, id, userID primitive.ObjectID) (*models.Portfolio, error) {
	if userID.IsZero() {
		return nil, &apperr.ValidationError{Fields: []string{"user_id"}}
	}
	return s.store.PushMentoringRequest(ctx, id, models.MentoringRequest{UserID: userID})
}

// RespondToMentoringRequest applies the mentor's decision: "complete"
// finishes the request, "reject" declines it; anything else is an
// InvalidArgument. A completed session also bumps the mentor's coaching
// count, as a separate non-transactional write.
func (s *Service) RespondToMentoringRequest(ctx context.Context, id, requestID primitive.ObjectID, action, message string) (*models.Portfolio, error) {
	status, ok := models.StatusForAction(action)
	if !ok {
		return nil, apperr.InvalidArgumentf("unrecognized response action %q", action)
	}

	p, err := s.store.SetMentoringRequestStatus(ctx, id, requestID, status, htmlsanitize.SanitizeTrimmed(message))
	if err != nil {
		return nil, err
	}

	if status == models.MentoringCompleted {
		if err := s.store.IncrementCoachingCount(ctx, id); err != nil {
			s.log.Warn("coaching count increment failed",
				zap.String("portfolio_id", id.Hex()), zap.Error(err))
		}
	}
	return p, nil
}

// UpdateMentoringRequestStatus overwrites the request's status with any
// of the four recognized values. The transition is deliberately not
// checked against the current status; callers are trusted.
func (s *Service) UpdateMentoringRequestStatus(ctx context.Context, id, requestID primitive.ObjectID, status models.MentoringStatus) (*models.Portfolio, error) {
	if !status.IsValid() {
		return nil, apperr.InvalidArgumentf("unrecognized mentoring request status %q", status)
	}
	return s.store.SetMentoringRequestStatus(ctx, id, requestID, status, "")
}

// MentoringRequestsByOwner lists the requests on the owner's portfolio,
// optionally narrowed to one status.
func (s *Service) MentoringRequestsByOwner(ctx context.Context, ownerID primitive.ObjectID, status models.MentoringStatus) ([]models.MentoringRequest, error) {
	if status != "" && !status.IsValid() {
		return nil, apperr.InvalidArgumentf("unrecognized mentoring request status %q", status)
	}

	p, err := s.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	requests := []models.MentoringRequest{}
	for _, r := range p.MentoringRequests {
		if status == "" || r.Status == status {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

// MentoringRequestsByUser collects the user's requests across every
// portfolio, pairing each with the portfolio it lives in.
func (s *Service) MentoringRequestsByUser(ctx context.Context, userID primitive.ObjectID, status models.MentoringStatus) ([]models.UserMentoringRequest, error) {
	if status != "" && !status.IsValid() {
		return nil, apperr.InvalidArgumentf("unrecognized mentoring request status %q", status)
	}

	portfolios, _, err := s.List(ctx, paging.Params{})
	if err != nil {
		return nil, err
	}

	requests := []models.UserMentoringRequest{}
	for _, p := range portfolios {
		for _, r := range p.MentoringRequests {
			if r.UserID != userID {
				continue
			}
			if status != "" && r.Status != status {
				continue
			}
			requests = append(requests, models.UserMentoringRequest{
				MentoringRequest: r,
				PortfolioID:      p.ID,
			})
		}
	}
	return requests, nil
}
