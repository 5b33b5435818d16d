// internal/app/system/inputval/inputval.go

// Package inputval validates aggregate creation payloads before they
// reach the store layer. A failed check returns *apperr.ValidationError
// listing every missing or invalid field, not just the first.
package inputval

import (
	"strings"

	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/domain/models"
)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// ValidatePortfolio checks the required fields for a new mentor
// portfolio.
func ValidatePortfolio(p models.Portfolio) error {
	var missing []string

	if p.OwnerID.IsZero() {
		missing = append(missing, "owner_id")
	}
	if blank(p.NickName) {
		missing = append(missing, "nick_name")
	}
	if blank(p.Name) {
		missing = append(missing, "name")
	}
	if blank(p.Title) {
		missing = append(missing, "title")
	}
	if blank(p.Description) {
		missing = append(missing, "description")
	}
	if len(p.Position) == 0 {
		missing = append(missing, "position")
	}
	if p.Status != "" && p.Status != models.PortfolioActive && p.Status != models.PortfolioClosed {
		missing = append(missing, "status")
	}

	if len(missing) > 0 {
		return &apperr.ValidationError{Fields: missing}
	}
	return nil
}

// ValidateProjectStudy checks the required fields for a new
// project/study recruitment post, including its enumerated values.
func ValidateProjectStudy(ps models.ProjectStudy) error {
	var missing []string

	if ps.OwnerID.IsZero() {
		missing = append(missing, "owner_id")
	}
	if blank(ps.NickName) {
		missing = append(missing, "nick_name")
	}
	if blank(ps.Name) {
		missing = append(missing, "name")
	}
	if blank(ps.Title) {
		missing = append(missing, "title")
	}
	if blank(ps.Description) {
		missing = append(missing, "description")
	}
	if len(ps.Position) == 0 {
		missing = append(missing, "position")
	}
	if !models.IsValidClassification(ps.Classification) {
		missing = append(missing, "classification")
	}
	switch ps.HowContactTitle {
	case models.ContactDiscord, models.ContactOpenChat, models.ContactOther:
	default:
		missing = append(missing, "how_contact_title")
	}
	if blank(ps.HowContactContent) {
		missing = append(missing, "how_contact_content")
	}
	switch ps.Process {
	case models.ProcessOnline, models.ProcessOffline, models.ProcessHybrid:
	default:
		missing = append(missing, "process")
	}
	if ps.Deadline.IsZero() {
		missing = append(missing, "deadline")
	}
	if blank(ps.Recruits) {
		missing = append(missing, "recruits")
	}
	switch ps.RecruitsStatus {
	case models.Recruiting, models.RecruitingClosed:
	default:
		missing = append(missing, "recruits_status")
	}

	if len(missing) > 0 {
		return &apperr.ValidationError{Fields: missing}
	}
	return nil
}
