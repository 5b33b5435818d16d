package portfoliostore_test

import (
	"sync"
	"testing"
	"time"

	portfoliostore "github.com/dalemusser/mentorhub/internal/app/store/portfolios"
	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/paging"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := portfoliostore.New(db)

	created, err := store.Create(ctx, models.Portfolio{
		OwnerID:     primitive.NewObjectID(),
		NickName:    "dev-kim",
		Name:        "Kim",
		Title:       "Backend mentoring",
		Description: "ten years of server work",
		Position:    models.Positions{"backend", "backend", " devops "},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("Create should assign an id")
	}
	if created.Status != models.PortfolioActive {
		t.Errorf("status: got %q, want %q", created.Status, models.PortfolioActive)
	}
	if len(created.Position) != 2 {
		t.Errorf("position should be normalized, got %v", created.Position)
	}
	if created.Comments == nil || created.MentoringRequests == nil {
		t.Error("embedded arrays should be non-nil")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Backend mentoring" {
		t.Errorf("title: got %q", got.Title)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); !apperr.IsNotFound(err) {
		t.Errorf("expected NotFound for unknown id, got %v", err)
	}
}

func TestGetByTitleAndOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := portfoliostore.New(db)
	fx := testutil.NewFixtures(t, db)

	owner := primitive.NewObjectID()
	fx.CreatePortfolio(ctx, owner, "frontend-coaching", "frontend")

	byTitle, err := store.GetByTitle(ctx, "frontend-coaching")
	if err != nil {
		t.Fatalf("GetByTitle: %v", err)
	}
	if byTitle == nil || byTitle.OwnerID != owner {
		t.Errorf("GetByTitle returned %+v", byTitle)
	}

	missing, err := store.GetByTitle(ctx, "no-such-title")
	if err != nil || missing != nil {
		t.Errorf("absent title should be (nil, nil), got (%v, %v)", missing, err)
	}

	byOwner, err := store.GetByOwnerID(ctx, owner)
	if err != nil || byOwner == nil {
		t.Fatalf("GetByOwnerID: (%v, %v)", byOwner, err)
	}
	if byOwner.Title != "frontend-coaching" {
		t.Errorf("owner lookup: got %q", byOwner.Title)
	}
}

func TestListPositionFilterAndTotal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := portfoliostore.New(db)
	fx := testutil.NewFixtures(t, db)

	for i := 0; i < 3; i++ {
		fx.CreatePortfolio(ctx, primitive.NewObjectID(), "backend-"+primitive.NewObjectID().Hex(), "backend")
	}
	fx.CreatePortfolio(ctx, primitive.NewObjectID(), "design-only", "designer")

	items, total, err := store.List(ctx, portfoliostore.ListFilter{Position: "backend"}, paging.Params{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("page size: got %d, want 2", len(items))
	}
	if total != 3 {
		t.Errorf("total: got %d, want 3", total)
	}

	_, total, err = store.List(ctx, portfoliostore.ListFilter{}, paging.Params{Limit: 10})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if total != 4 {
		t.Errorf("unfiltered total: got %d, want 4", total)
	}
}

func TestUpdatePatchesOnlyNamedFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := portfoliostore.New(db)
	fx := testutil.NewFixtures(t, db)

	p := fx.CreatePortfolio(ctx, primitive.NewObjectID(), "patch-me", "backend")

	desc := "updated description"
	status := models.PortfolioClosed
	got, err := store.Update(ctx, p.ID, portfoliostore.Update{
		Description: &desc,
		Status:      &status,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Description != desc || got.Status != models.PortfolioClosed {
		t.Errorf("update not applied: %+v", got)
	}
	if got.Title != "patch-me" {
		t.Errorf("unnamed field changed: title %q", got.Title)
	}
	if !got.UpdatedAt.After(p.UpdatedAt) {
		t.Error("updated_at should advance")
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := portfoliostore.New(db)
	fx := testutil.NewFixtures(t, db)

	p := fx.CreatePortfolio(ctx, primitive.NewObjectID(), "to-delete")

	deleted, err := store.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != p.ID {
		t.Errorf("deleted wrong document: %s", deleted.ID.Hex())
	}

	if _, err := store.GetByID(ctx, p.ID); !apperr.IsNotFound(err) {
		t.Errorf("document should be gone, got %v", err)
	}
	if _, err := store.Delete(ctx, p.ID); !apperr.IsNotFound(err) {
		t.Errorf("second delete should be NotFound, got %v", err)
	}
}

func TestTopByCoachingCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := portfoliostore.New(db)
	fx := testutil.NewFixtures(t, db)

	for i, count := range []int{2, 7, 5} {
		p := fx.CreatePortfolio(ctx, primitive.NewObjectID(), "rank-"+string(rune('a'+i)), "backend")
		for j := 0; j < count; j++ {
			if err := store.IncrementCoachingCount(ctx, p.ID); err != nil {
				t.Fatalf("IncrementCoachingCount: %v", err)
			}
		}
	}

	top, err := store.TopByCoachingCount(ctx, 2)
	if err != nil {
		t.Fatalf("TopByCoachingCount: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d portfolios, want 2", len(top))
	}
	if top[0].CoachingCount != 7 || top[1].CoachingCount != 5 {
		t.Errorf("ranking order wrong: %d, %d", top[0].CoachingCount, top[1].CoachingCount)
	}

	byPos, err := store.TopByCoachingCountAndPosition(ctx, "backend", 5)
	if err != nil {
		t.Fatalf("TopByCoachingCountAndPosition: %v", err)
	}
	if len(byPos) != 3 {
		t.Errorf("position ranking: got %d, want 3", len(byPos))
	}
}

// Equal coaching counts rank the more recently created portfolio first.
func TestTopRankingBreaksTiesByNewestCreation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := portfoliostore.New(db)

	base := time.Now().UTC().Truncate(time.Millisecond)
	mentors := []struct {
		title string
		count int
	}{
		{"mentor-a", 10},
		{"mentor-b", 5},
		{"mentor-c", 8},
		{"mentor-d", 5},
	}
	for i, m := range mentors {
		_, err := db.Collection("portfolios").InsertOne(ctx, bson.M{
			"owner_id":           primitive.NewObjectID(),
			"nick_name":          m.title,
			"name":               m.title,
			"title":              m.title,
			"status":             models.PortfolioActive,
			"position":           []string{"backend"},
			"coaching_count":     m.count,
			"comments":           []bson.M{},
			"mentoring_requests": []bson.M{},
			"created_at":         base.Add(time.Duration(i) * time.Minute),
			"updated_at":         base,
		})
		if err != nil {
			t.Fatalf("InsertOne: %v", err)
		}
	}

	top, err := store.TopByCoachingCountAndPosition(ctx, "backend", 5)
	if err != nil {
		t.Fatalf("TopByCoachingCountAndPosition: %v", err)
	}
	// mentor-d was created after mentor-b, so it wins the tie at count 5.
	want := []string{"mentor-a", "mentor-c", "mentor-d", "mentor-b"}
	if len(top) != len(want) {
		t.Fatalf("got %d portfolios, want %d", len(top), len(want))
	}
	for i, title := range want {
		if top[i].Title != title {
			t.Errorf("rank %d: got %q, want %q", i, top[i].Title, title)
		}
	}
}

// Two goroutines appending comments to the same portfolio must both
// survive; the embedded array is updated with an atomic push, not a
// read-modify-write of the whole document.
func TestConcurrentCommentAppends(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := portfoliostore.New(db)
	fx := testutil.NewFixtures(t, db)

	p := fx.CreatePortfolio(ctx, primitive.NewObjectID(), "contended")

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.PushComment(ctx, p.ID, models.Comment{
				Author:  "user",
				OwnerID: primitive.NewObjectID(),
				Content: "hello",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("PushComment: %v", err)
		}
	}

	got, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Comments) != writers {
		t.Errorf("comments lost: got %d, want %d", len(got.Comments), writers)
	}
}
