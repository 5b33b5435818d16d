// internal/app/store/notifications/notificationstore.go

// Package notificationstore persists user notifications. Writers treat
// it as a fire-and-forget sink; a failed insert never rolls back the
// write that triggered it.
package notificationstore

import (
	"context"
	"time"

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
	return &Store{c: db.Collection("notifications")}
}

// Create inserts a notification, assigning its id and creation time.
func (s *Store) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Notification{}, apperr.Storef(err, "creating notification")
	}
	return n, nil
}

// ListByUserID returns the user's notifications, newest first.
func (s *Store) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperr.Storef(err, "listing notifications")
	}
	defer cur.Close(ctx)

	items := []models.Notification{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, apperr.Storef(err, "listing notifications")
	}
	return items, nil
}

// MarkRead flags a notification as read.
func (s *Store) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return apperr.Storef(err, "marking notification read")
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("notification %s does not exist", id.Hex())
	}
	return nil
}
