// internal/domain/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a message delivered to a user, currently emitted when
// someone comments on their project/study post.
type Notification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	Content        string             `bson:"content" json:"content"`
	ProjectStudyID primitive.ObjectID `bson:"project_study_id,omitempty" json:"project_study_id,omitempty"`
	Read           bool               `bson:"read" json:"read"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
