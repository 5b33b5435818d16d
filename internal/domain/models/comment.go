// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a sub-entity embedded in a parent aggregate's ordered
// comments array. Its _id is generated when the comment is appended and
// is unique within the parent document only.
type Comment struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Author  string             `bson:"author" json:"author"`
	OwnerID primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	Content string             `bson:"content" json:"content"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
