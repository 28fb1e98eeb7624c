package services

import (
	"log"
	"time"
	"upishield/internal/db"
	"upishield/internal/models"
)

// VerificationResult is what a verification request returns to the caller.
// LastSeen is the identity's previous sighting, read before this verification
// refreshed it.
type VerificationResult struct {
	UpiID        string    `json:"upi_id"`
	Score        int       `json:"score"`
	Level        string    `json:"level"`
	Reason       string    `json:"reason"`
	TotalReports int       `json:"total_reports"`
	LastSeen     time.Time `json:"last_seen"`
}

// VerifyUpi runs the full verification flow: resolve the handle, collect the
// community signals, score them, and persist the event. The acting user's
// verification counter is bumped once per completed run.
func VerifyUpi(rawInput string, userID uint) (*VerificationResult, error) {
	identity, err := ResolveIdentity(rawInput)
	if err != nil {
		return nil, err
	}

	signals, err := CollectSignals(identity.ID)
	if err != nil {
		return nil, err
	}

	score, level, reason := ScoreRisk(signals)

	if _, err := RecordVerification(identity.ID, userID, score, level, reason); err != nil {
		return nil, err
	}

	if err := AddContribution(userID, ActionVerification); err != nil {
		log.Printf("Failed to credit verification for user %d: %v", userID, err)
	}

	return &VerificationResult{
		UpiID:        identity.UpiID,
		Score:        score,
		Level:        level,
		Reason:       reason,
		TotalReports: signals.TotalReports,
		LastSeen:     identity.LastSeenAt,
	}, nil
}

// RecordVerification persists the immutable scoring event, then refreshes the
// identity's last-seen timestamp. The event insert is authoritative; last-seen
// is best-effort metadata, so a failed update is logged and the event kept.
func RecordVerification(identityID, userID uint, score int, level, reason string) (*models.Verification, error) {
	verification := models.Verification{
		UpiIdentityID: identityID,
		UserID:        userID,
		RiskScore:     score,
		RiskLevel:     level,
		Reason:        reason,
	}
	if err := db.DB.Create(&verification).Error; err != nil {
		return nil, err
	}

	if err := db.DB.Model(&models.UpiIdentity{}).
		Where("id = ?", identityID).
		UpdateColumn("last_seen_at", time.Now()).Error; err != nil {
		log.Printf("Verification %d recorded but last_seen update failed for identity %d: %v",
			verification.ID, identityID, err)
	}

	return &verification, nil
}

// RecentVerifications returns the newest scoring events for one identity.
func RecentVerifications(identityID uint, limit int) ([]models.Verification, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	var verifications []models.Verification
	err := db.DB.Where("upi_identity_id = ?", identityID).
		Order("created_at DESC").
		Limit(limit).
		Find(&verifications).Error
	return verifications, err
}
