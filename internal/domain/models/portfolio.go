// internal/domain/models/portfolio.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Portfolio statuses.
const (
	PortfolioActive = "active"
	PortfolioClosed = "closed"
)

// Portfolio is a mentor's coaching profile. It is the aggregate root for
// its embedded comments and mentoring requests: both arrays preserve
// insertion order and their elements have no identity outside this
// document.
type Portfolio struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID  primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	NickName string             `bson:"nick_name" json:"nick_name"`
	Name     string             `bson:"name" json:"name"`
	Title    string             `bson:"title" json:"title"`

	Description string    `bson:"description" json:"description"`
	Career      string    `bson:"career,omitempty" json:"career,omitempty"`
	Position    Positions `bson:"position" json:"position"`
	Status      string    `bson:"status" json:"status"` // "active" or "closed"

	ProfileImageURL string `bson:"profile_image_url" json:"profile_image_url"`

	// CoachingCount ranks mentors in the "top mentors" queries.
	CoachingCount int `bson:"coaching_count" json:"coaching_count"`

	Comments          []Comment          `bson:"comments" json:"comments"`
	MentoringRequests []MentoringRequest `bson:"mentoring_requests" json:"mentoring_requests"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
