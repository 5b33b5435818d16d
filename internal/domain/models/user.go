// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the platform account referenced by aggregates through OwnerID.
// Only the fields this core reads are modeled; account management lives
// elsewhere.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NickName string             `bson:"nick_name" json:"nick_name"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role"` // "mentor" or "mentee"
	Position string             `bson:"position,omitempty" json:"position,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
