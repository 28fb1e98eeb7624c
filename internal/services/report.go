package services

import (
	"errors"
	"html/template"
	"log"
	"net/url"
	"time"
	"upishield/internal/db"
	"upishield/internal/models"
	"upishield/internal/utils"

	"gorm.io/gorm"
)

// ReportInput is the caller-supplied part of a fraud report.
type ReportInput struct {
	Reason      string `json:"reason"`
	Details     string `json:"details"`
	EvidenceURL string `json:"evidence_url"`
}

func validateReport(input ReportInput) error {
	if len(input.Reason) < 5 {
		return invalid("reason", "reason must be at least 5 characters")
	}
	if len(input.Reason) > 200 {
		return invalid("reason", "reason must be less than 200 characters")
	}
	if len(input.Details) < 10 {
		return invalid("details", "details must be at least 10 characters")
	}
	if len(input.Details) > 2000 {
		return invalid("details", "details must be less than 2000 characters")
	}
	if input.EvidenceURL != "" {
		if len(input.EvidenceURL) > 500 {
			return invalid("evidence_url", "URL must be less than 500 characters")
		}
		parsed, err := url.Parse(input.EvidenceURL)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return invalid("evidence_url", "invalid URL format")
		}
	}
	return nil
}

// FileReport validates and persists a fraud accusation against the resolved
// handle, and credits the reporter. Validation fails before anything is
// written, including the identity get-or-create.
func FileReport(rawInput string, userID uint, input ReportInput) (*models.Report, error) {
	upiID := ExtractUpiID(rawInput)
	if err := ValidateUpiID(upiID); err != nil {
		return nil, err
	}
	if err := validateReport(input); err != nil {
		return nil, err
	}

	identity, err := ResolveIdentity(upiID)
	if err != nil {
		return nil, err
	}

	report := models.Report{
		UpiIdentityID: identity.ID,
		UserID:        userID,
		Reason:        input.Reason,
		Details:       input.Details,
		EvidenceURL:   input.EvidenceURL,
		Status:        models.ReportStatusOpen,
	}
	if err := db.DB.Create(&report).Error; err != nil {
		return nil, err
	}

	if err := AddContribution(userID, ActionReport); err != nil {
		log.Printf("Failed to credit report for user %d: %v", userID, err)
	}

	return &report, nil
}

// ResolveReport moves an open report into a terminal status and stamps the
// resolution time. Terminal states never transition again.
func ResolveReport(reportID uint, status string) error {
	if status != models.ReportStatusResolved && status != models.ReportStatusRejected {
		return invalid("status", "status must be resolved or rejected")
	}

	var report models.Report
	if err := db.DB.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if report.Status != models.ReportStatusOpen {
		return invalid("status", "report is already "+report.Status)
	}

	now := time.Now()
	return db.DB.Model(&report).Updates(map[string]interface{}{
		"status":      status,
		"resolved_at": &now,
	}).Error
}

// ReportView pairs a report with its details rendered for the review screen.
type ReportView struct {
	models.Report
	DetailsHTML template.HTML `json:"details_html"`
}

// OpenReports lists open reports, newest first, details rendered and sanitized.
func OpenReports(limit int) ([]ReportView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var reports []models.Report
	err := db.DB.Preload("UpiIdentity").
		Where("status = ?", models.ReportStatusOpen).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}

	views := make([]ReportView, 0, len(reports))
	for _, report := range reports {
		views = append(views, ReportView{
			Report:      report,
			DetailsHTML: utils.RenderMarkdown(report.Details),
		})
	}
	return views, nil
}
