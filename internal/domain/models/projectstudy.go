// internal/domain/models/projectstudy.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStudy classifications.
const (
	ClassificationStudy   = "study"
	ClassificationProject = "project"
)

// Recruiting statuses.
const (
	Recruiting       = "recruiting"
	RecruitingClosed = "closed"
)

// Meeting process values.
const (
	ProcessOnline  = "online"
	ProcessOffline = "offline"
	ProcessHybrid  = "hybrid"
)

// Contact channel values.
const (
	ContactDiscord  = "discord"
	ContactOpenChat = "open_chat"
	ContactOther    = "other"
)

// ProjectStudy is a project or study recruitment post. It is the
// aggregate root for its embedded comments.
type ProjectStudy struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID  primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	NickName string             `bson:"nick_name" json:"nick_name"`
	Name     string             `bson:"name" json:"name"`
	Title    string             `bson:"title" json:"title"`

	Description    string    `bson:"description" json:"description"`
	Position       Positions `bson:"position" json:"position"`
	Classification string    `bson:"classification" json:"classification"` // "study" or "project"

	HowContactTitle   string `bson:"how_contact_title" json:"how_contact_title"` // "discord", "open_chat", "other"
	HowContactContent string `bson:"how_contact_content" json:"how_contact_content"`
	Process           string `bson:"process" json:"process"` // "online", "offline", "hybrid"

	Deadline       time.Time `bson:"deadline" json:"deadline"`
	Recruits       string    `bson:"recruits" json:"recruits"`
	RecruitsStatus string    `bson:"recruits_status" json:"recruits_status"` // "recruiting" or "closed"

	ProfileImageURL string `bson:"profile_image_url" json:"profile_image_url"`

	Comments []Comment `bson:"comments" json:"comments"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsValidClassification reports whether c is a recognized classification.
func IsValidClassification(c string) bool {
	return c == ClassificationStudy || c == ClassificationProject
}
