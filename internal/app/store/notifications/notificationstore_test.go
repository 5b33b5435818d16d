package notificationstore_test

import (
	"testing"

	notificationstore "github.com/dalemusser/mentorhub/internal/app/store/notifications"
	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateListMarkRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := notificationstore.New(db)

	userID := primitive.NewObjectID()

	first, err := store.Create(ctx, models.Notification{
		UserID:         userID,
		Content:        "first",
		ProjectStudyID: primitive.NewObjectID(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID.IsZero() || first.CreatedAt.IsZero() {
		t.Fatal("Create should assign id and created_at")
	}

	if _, err := store.Create(ctx, models.Notification{UserID: primitive.NewObjectID(), Content: "other user"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mine, err := store.ListByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(mine) != 1 || mine[0].Content != "first" {
		t.Errorf("got %+v", mine)
	}
	if mine[0].Read {
		t.Error("new notification should start unread")
	}

	if err := store.MarkRead(ctx, first.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	mine, err = store.ListByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if !mine[0].Read {
		t.Error("notification should be read")
	}

	if err := store.MarkRead(ctx, primitive.NewObjectID()); !apperr.IsNotFound(err) {
		t.Errorf("expected NotFound for unknown id, got %v", err)
	}
}
