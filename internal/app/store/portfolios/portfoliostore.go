// internal/app/store/portfolios/portfoliostore.go

// Package portfoliostore persists Portfolio aggregates in the
// "portfolios" collection. It owns no business rules: every write is a
// single atomic document operation, and embedded-array mutations go
// through the subdoc manager.
package portfoliostore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/store/subdoc"
	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/paging"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c        *mongo.Collection
	comments subdoc.Collection[models.Portfolio]
	requests subdoc.Collection[models.Portfolio]
}

func New(db *mongo.Database) *Store {
	c := db.Collection("portfolios")
	return &Store{
		c:        c,
		comments: subdoc.New[models.Portfolio](c, "comments"),
		requests: subdoc.New[models.Portfolio](c, "mentoring_requests"),
	}
}

func notFound(id primitive.ObjectID) error {
	return apperr.NotFoundf("portfolio %s does not exist", id.Hex())
}

// GetByID loads a portfolio by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Portfolio, error) {
	var p models.Portfolio
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "finding portfolio")
	}
	return &p, nil
}

// GetByTitle returns the portfolio with the given title, or nil when no
// portfolio matches. An empty result is not an error.
func (s *Store) GetByTitle(ctx context.Context, title string) (*models.Portfolio, error) {
	var p models.Portfolio
	err := s.c.FindOne(ctx, bson.M{"title": title}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storef(err, "finding portfolio by title")
	}
	return &p, nil
}

// GetByOwnerID returns the owner's portfolio, or nil when the owner has
// none. Each mentor has at most one portfolio.
func (s *Store) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (*models.Portfolio, error) {
	var p models.Portfolio
	err := s.c.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storef(err, "finding portfolio by owner")
	}
	return &p, nil
}

// ListFilter is the closed set of filter dimensions for portfolio
// lists. Zero-valued dimensions do not constrain the query.
type ListFilter struct {
	Position string
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	if f.Position != "" {
		q["position"] = f.Position
	}
	return q
}

// List returns one page of portfolios plus the total match count,
// newest first unless the params say otherwise.
func (s *Store) List(ctx context.Context, f ListFilter, p paging.Params) ([]models.Portfolio, int64, error) {
	items, total, err := paging.FindPage[models.Portfolio](ctx, s.c, f.query(), p)
	if err != nil {
		return nil, 0, apperr.Storef(err, "listing portfolios")
	}
	return items, total, nil
}

// Create inserts a new portfolio, assigning its id and timestamps.
func (s *Store) Create(ctx context.Context, p models.Portfolio) (models.Portfolio, error) {
	p.ID = primitive.NewObjectID()
	p.Position = models.NormalizePositions(p.Position...)
	if p.Status == "" {
		p.Status = models.PortfolioActive
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	if p.MentoringRequests == nil {
		p.MentoringRequests = []models.MentoringRequest{}
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Portfolio{}, apperr.Storef(err, "creating portfolio")
	}
	return p, nil
}

// Update holds the fields a portfolio update may change. Nil fields are
// left untouched; embedded arrays and coaching_count have their own
// operations and are never written here.
type Update struct {
	NickName        *string
	Name            *string
	Title           *string
	Description     *string
	Career          *string
	Status          *string
	ProfileImageURL *string
	Position        models.Positions
}

func (u Update) set() bson.M {
	set := bson.M{"updated_at": time.Now()}
	if u.NickName != nil {
		set["nick_name"] = *u.NickName
	}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Career != nil {
		set["career"] = *u.Career
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.ProfileImageURL != nil {
		set["profile_image_url"] = *u.ProfileImageURL
	}
	if u.Position != nil {
		set["position"] = models.NormalizePositions(u.Position...)
	}
	return set
}

// Update patches the named fields and returns the post-update document.
// Concurrent updates are last-write-wins per field set.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Portfolio, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Portfolio
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": upd.set()}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "updating portfolio")
	}
	return &p, nil
}

// IncrementCoachingCount bumps the ranking signal after a completed
// mentoring session.
func (s *Store) IncrementCoachingCount(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"coaching_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return apperr.Storef(err, "incrementing coaching count")
	}
	if res.MatchedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Delete removes the portfolio and returns the deleted document. Its
// embedded comments and requests die with it.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (*models.Portfolio, error) {
	var p models.Portfolio
	err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperr.Storef(err, "deleting portfolio")
	}
	return &p, nil
}

// coachingRank orders mentors by coaching count, then by most recent
// creation for ties.
func coachingRank() bson.D {
	return bson.D{{Key: "coaching_count", Value: -1}, {Key: "created_at", Value: -1}}
}

// TopByCoachingCount returns the highest-ranked mentor portfolios.
func (s *Store) TopByCoachingCount(ctx context.Context, limit int64) ([]models.Portfolio, error) {
	opts := options.Find().SetSort(coachingRank()).SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Storef(err, "ranking mentors")
	}
	defer cur.Close(ctx)

	items := []models.Portfolio{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, apperr.Storef(err, "ranking mentors")
	}
	return items, nil
}

// TopByCoachingCountAndPosition is TopByCoachingCount restricted to
// portfolios carrying the given position tag.
func (s *Store) TopByCoachingCountAndPosition(ctx context.Context, position string, limit int64) ([]models.Portfolio, error) {
	opts := options.Find().SetSort(coachingRank()).SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"position": position}, opts)
	if err != nil {
		return nil, apperr.Storef(err, "ranking mentors by position")
	}
	defer cur.Close(ctx)

	items := []models.Portfolio{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, apperr.Storef(err, "ranking mentors by position")
	}
	return items, nil
}
