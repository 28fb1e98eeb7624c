package services

import (
	"time"
	"upishield/internal/db"
	"upishield/internal/models"
)

// RiskSignals is the aggregate community history feeding the scorer.
type RiskSignals struct {
	TotalReports     int // Lifetime report count, any status
	Reports30d       int
	Verifications30d int
	UnsafeVotes30d   int
}

// Sliding window anchored to request time, not calendar-aligned.
const signalWindow = 30 * 24 * time.Hour

// CollectSignals recomputes the four counts for one identity as of now.
// No caching: signals are cheap bounded counts and the score must reflect the
// history at the moment of the request.
func CollectSignals(identityID uint) (RiskSignals, error) {
	var signals RiskSignals
	since := time.Now().Add(-signalWindow)

	var count int64
	if err := db.DB.Model(&models.Report{}).
		Where("upi_identity_id = ?", identityID).
		Count(&count).Error; err != nil {
		return signals, err
	}
	signals.TotalReports = int(count)

	if err := db.DB.Model(&models.Report{}).
		Where("upi_identity_id = ? AND created_at >= ?", identityID, since).
		Count(&count).Error; err != nil {
		return signals, err
	}
	signals.Reports30d = int(count)

	if err := db.DB.Model(&models.Verification{}).
		Where("upi_identity_id = ? AND created_at >= ?", identityID, since).
		Count(&count).Error; err != nil {
		return signals, err
	}
	signals.Verifications30d = int(count)

	// Votes belong to verifications; the window applies to the vote itself.
	if err := db.DB.Model(&models.VerificationVote{}).
		Joins("JOIN verifications ON verifications.id = verification_votes.verification_id").
		Where("verifications.upi_identity_id = ? AND verification_votes.vote = ? AND verification_votes.created_at >= ?",
			identityID, models.VoteUnsafe, since).
		Count(&count).Error; err != nil {
		return signals, err
	}
	signals.UnsafeVotes30d = int(count)

	return signals, nil
}
