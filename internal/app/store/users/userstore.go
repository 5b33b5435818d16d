// internal/app/store/users/userstore.go

// Package userstore is the narrow read-side view of the users
// collection this core needs: account management lives in another
// service, and only position lookups for ranking queries happen here.
package userstore

import (
	"context"
	"errors"

	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFoundf("user %s does not exist", id.Hex())
	}
	if err != nil {
		return nil, apperr.Storef(err, "finding user")
	}
	return &u, nil
}

// GetPositionByID returns the user's position tag, fetching only that
// field. Callers treat failures as lookup errors.
func (s *Store) GetPositionByID(ctx context.Context, id primitive.ObjectID) (string, error) {
	proj := options.FindOne().SetProjection(bson.M{"position": 1})

	var u struct {
		Position string `bson:"position"`
	}
	err := s.c.FindOne(ctx, bson.M{"_id": id}, proj).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", apperr.NotFoundf("user %s does not exist", id.Hex())
	}
	if err != nil {
		return "", apperr.Storef(err, "finding user position")
	}
	return u.Position, nil
}
