package models_test

import (
	"testing"

	"github.com/dalemusser/mentorhub/internal/domain/models"
)

func TestMentoringStatusIsValid(t *testing.T) {
	valid := []models.MentoringStatus{
		models.MentoringRequested,
		models.MentoringAccepted,
		models.MentoringCompleted,
		models.MentoringRejected,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []models.MentoringStatus{"", "pending", "REQUESTED", "done"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestMentoringStatusIsTerminal(t *testing.T) {
	cases := []struct {
		status models.MentoringStatus
		want   bool
	}{
		{models.MentoringRequested, false},
		{models.MentoringAccepted, false},
		{models.MentoringCompleted, true},
		{models.MentoringRejected, true},
	}
	for _, tc := range cases {
		if got := tc.status.IsTerminal(); got != tc.want {
			t.Errorf("IsTerminal(%q): got %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestStatusForAction(t *testing.T) {
	cases := []struct {
		action string
		want   models.MentoringStatus
		ok     bool
	}{
		{models.ActionComplete, models.MentoringCompleted, true},
		{models.ActionReject, models.MentoringRejected, true},
		{"accept", "", false},
		{"", "", false},
		{"Complete", "", false},
	}
	for _, tc := range cases {
		got, ok := models.StatusForAction(tc.action)
		if got != tc.want || ok != tc.ok {
			t.Errorf("StatusForAction(%q): got (%q, %v), want (%q, %v)", tc.action, got, ok, tc.want, tc.ok)
		}
	}
}
