// internal/domain/models/mentoringrequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MentoringStatus is the lifecycle state of a mentoring request.
type MentoringStatus string

const (
	MentoringRequested MentoringStatus = "requested"
	MentoringAccepted  MentoringStatus = "accepted"
	MentoringCompleted MentoringStatus = "completed"
	MentoringRejected  MentoringStatus = "rejected"
)

// IsValid reports whether s is one of the four recognized statuses.
func (s MentoringStatus) IsValid() bool {
	switch s {
	case MentoringRequested, MentoringAccepted, MentoringCompleted, MentoringRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected from s.
func (s MentoringStatus) IsTerminal() bool {
	return s == MentoringCompleted || s == MentoringRejected
}

// Mentor response actions accepted by StatusForAction.
const (
	ActionComplete = "complete"
	ActionReject   = "reject"
)

// StatusForAction maps a mentor's response action to the resulting
// status. The boolean is false for unrecognized actions.
func StatusForAction(action string) (MentoringStatus, bool) {
	switch action {
	case ActionComplete:
		return MentoringCompleted, true
	case ActionReject:
		return MentoringRejected, true
	}
	return "", false
}

// MentoringRequest is a sub-entity embedded in a portfolio's ordered
// mentoring_requests array. Requests start as "requested"; the owning
// mentor moves them to completed or rejected, optionally attaching a
// response message.
type MentoringRequest struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	UserID  primitive.ObjectID `bson:"user_id" json:"user_id"`
	Status  MentoringStatus    `bson:"status" json:"status"`
	Message string             `bson:"message,omitempty" json:"message,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// UserMentoringRequest is a mentoring request paired with the portfolio
// it lives in, used when listing one user's requests across all
// portfolios.
type UserMentoringRequest struct {
	MentoringRequest `bson:",inline"`

	PortfolioID primitive.ObjectID `bson:"portfolio_id" json:"portfolio_id"`
}
