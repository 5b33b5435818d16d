package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user with the given role and position.
// Returns the created user with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, nickName, role, position string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		NickName:  nickName,
		Email:     nickName + "@test.com",
		Role:      role,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("create test user: %v", err)
	}
	return u
}

// CreatePortfolio inserts a test portfolio owned by ownerID.
// Returns the created portfolio with its generated ID.
func (f *Fixtures) CreatePortfolio(ctx context.Context, ownerID primitive.ObjectID, title string, positions ...string) models.Portfolio {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Portfolio{
		ID:                primitive.NewObjectID(),
		OwnerID:           ownerID,
		NickName:          "mentor-" + title,
		Name:              "Mentor " + title,
		Title:             title,
		Description:       "portfolio " + title,
		Position:          models.NormalizePositions(positions...),
		Status:            models.PortfolioActive,
		Comments:          []models.Comment{},
		MentoringRequests: []models.MentoringRequest{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := f.db.Collection("portfolios").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("create test portfolio: %v", err)
	}
	return p
}

// CreateProjectStudy inserts a test project/study post owned by ownerID.
// Returns the created post with its generated ID.
func (f *Fixtures) CreateProjectStudy(ctx context.Context, ownerID primitive.ObjectID, title, classification string, positions ...string) models.ProjectStudy {
	f.t.Helper()

	now := time.Now().UTC()
	ps := models.ProjectStudy{
		ID:                primitive.NewObjectID(),
		OwnerID:           ownerID,
		NickName:          "owner-" + title,
		Name:              "Owner " + title,
		Title:             title,
		Description:       "post " + title,
		Position:          models.NormalizePositions(positions...),
		Classification:    classification,
		HowContactTitle:   models.ContactOpenChat,
		HowContactContent: "https://chat.test/" + title,
		Process:           models.ProcessOnline,
		Deadline:          now.Add(14 * 24 * time.Hour),
		Recruits:          "3",
		RecruitsStatus:    models.Recruiting,
		Comments:          []models.Comment{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := f.db.Collection("project_studies").InsertOne(ctx, ps); err != nil {
		f.t.Fatalf("create test project/study post: %v", err)
	}
	return ps
}
