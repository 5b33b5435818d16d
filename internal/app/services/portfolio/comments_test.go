package portfoliosvc_test

import (
	"fmt"
	"testing"

	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddCommentValidation(t *testing.T) {
	svc, _, fx, ctx := newService(t, stubDirectory{})
	p := fx.CreatePortfolio(ctx, primitive.NewObjectID(), "comment-val")

	_, err := svc.AddComment(ctx, p.ID, models.Comment{
		Author:  "mentee",
		OwnerID: primitive.NewObjectID(),
		Content: "   ",
	})
	if !apperr.IsValidation(err) {
		t.Errorf("whitespace-only content: expected ValidationError, got %v", err)
	}

	_, err = svc.AddComment(ctx, p.ID, models.Comment{
		Author:  "mentee",
		Content: "no owner",
	})
	if !apperr.IsValidation(err) {
		t.Errorf("zero owner: expected ValidationError, got %v", err)
	}
}

func TestRemoveCommentAbsentIDIsSilent(t *testing.T) {
	svc, _, fx, ctx := newService(t, stubDirectory{})
	p := fx.CreatePortfolio(ctx, primitive.NewObjectID(), "silent-remove")

	got, err := svc.RemoveComment(ctx, p.ID, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("removing an absent comment should not error, got %v", err)
	}
	if len(got.Comments) != 0 {
		t.Errorf("comments: %+v", got.Comments)
	}
}

func TestCommentsPaging(t *testing.T) {
	svc, _, fx, ctx := newService(t, stubDirectory{})
	p := fx.CreatePortfolio(ctx, primitive.NewObjectID(), "paged-comments")

	for i := 0; i < 5; i++ {
		_, err := svc.AddComment(ctx, p.ID, models.Comment{
			Author:  "mentee",
			OwnerID: primitive.NewObjectID(),
			Content: fmt.Sprintf("comment %d", i),
		})
		if err != nil {
			t.Fatalf("AddComment: %v", err)
		}
	}

	items, total, err := svc.Comments(ctx, p.ID, 2, 2)
	if err != nil {
		t.Fatalf("Comments: %v", err)
	}
	if total != 5 {
		t.Errorf("total: got %d, want 5", total)
	}
	if len(items) != 2 {
		t.Fatalf("page size: got %d, want 2", len(items))
	}
	if items[0].Content != "comment 2" || items[1].Content != "comment 3" {
		t.Errorf("window wrong: %q, %q", items[0].Content, items[1].Content)
	}

	// Skipping past the end yields an empty page, not an error.
	items, total, err = svc.Comments(ctx, p.ID, 10, 100)
	if err != nil {
		t.Fatalf("Comments: %v", err)
	}
	if len(items) != 0 || total != 5 {
		t.Errorf("past-the-end: got %d items, total %d", len(items), total)
	}
}
