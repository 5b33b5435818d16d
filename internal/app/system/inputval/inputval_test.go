package inputval_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/inputval"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validPortfolio() models.Portfolio {
	return models.Portfolio{
		OwnerID:     primitive.NewObjectID(),
		NickName:    "gopher",
		Name:        "Jordan Kim",
		Title:       "Backend mentoring",
		Description: "Five years of Go services",
		Position:    models.Positions{"backend"},
		Status:      models.PortfolioActive,
	}
}

func validProjectStudy() models.ProjectStudy {
	return models.ProjectStudy{
		OwnerID:           primitive.NewObjectID(),
		NickName:          "gopher",
		Name:              "Jordan Kim",
		Title:             "Build a chat service",
		Description:       "Four-week project",
		Position:          models.Positions{"backend", "frontend"},
		Classification:    models.ClassificationProject,
		HowContactTitle:   models.ContactDiscord,
		HowContactContent: "discord.gg/abc",
		Process:           models.ProcessOnline,
		Deadline:          time.Now().Add(14 * 24 * time.Hour),
		Recruits:          "4",
		RecruitsStatus:    models.Recruiting,
	}
}

func TestValidatePortfolio_Valid(t *testing.T) {
	if err := inputval.ValidatePortfolio(validPortfolio()); err != nil {
		t.Errorf("expected valid portfolio, got %v", err)
	}
}

func TestValidatePortfolio_CollectsAllMissingFields(t *testing.T) {
	p := validPortfolio()
	p.OwnerID = primitive.NilObjectID
	p.Title = "   "
	p.Position = nil

	err := inputval.ValidatePortfolio(p)
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	want := map[string]bool{"owner_id": true, "title": true, "position": true}
	if len(ve.Fields) != len(want) {
		t.Fatalf("expected %d fields, got %v", len(want), ve.Fields)
	}
	for _, f := range ve.Fields {
		if !want[f] {
			t.Errorf("unexpected field %q in %v", f, ve.Fields)
		}
	}
}

func TestValidatePortfolio_BadStatus(t *testing.T) {
	p := validPortfolio()
	p.Status = "paused"
	err := inputval.ValidatePortfolio(p)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidateProjectStudy_Valid(t *testing.T) {
	if err := inputval.ValidateProjectStudy(validProjectStudy()); err != nil {
		t.Errorf("expected valid project/study, got %v", err)
	}
}

func TestValidateProjectStudy_EnumFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ProjectStudy)
		field  string
	}{
		{"bad classification", func(ps *models.ProjectStudy) { ps.Classification = "hackathon" }, "classification"},
		{"bad contact channel", func(ps *models.ProjectStudy) { ps.HowContactTitle = "phone" }, "how_contact_title"},
		{"bad process", func(ps *models.ProjectStudy) { ps.Process = "remote" }, "process"},
		{"bad recruits status", func(ps *models.ProjectStudy) { ps.RecruitsStatus = "open" }, "recruits_status"},
		{"zero deadline", func(ps *models.ProjectStudy) { ps.Deadline = time.Time{} }, "deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := validProjectStudy()
			tt.mutate(&ps)

			err := inputval.ValidateProjectStudy(ps)
			var ve *apperr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			found := false
			for _, f := range ve.Fields {
				if f == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %q in %v", tt.field, ve.Fields)
			}
		})
	}
}
