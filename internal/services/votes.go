package services

import (
	"errors"
	"log"
	"upishield/internal/db"
	"upishield/internal/models"

	"gorm.io/gorm"
)

// CastVote records a safe/unsafe opinion on the most recent verification of
// the given handle. Votes always attach to the latest event at the time of
// casting. One vote per user per verification; a duplicate attempt comes back
// as ErrDuplicateVote with the first vote untouched.
func CastVote(upiID string, userID uint, vote string) (*models.VerificationVote, error) {
	if vote != models.VoteSafe && vote != models.VoteUnsafe {
		return nil, invalid("vote", "vote must be safe or unsafe")
	}

	var identity models.UpiIdentity
	if err := db.DB.Where("upi_id = ?", upiID).First(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var verification models.Verification
	err := db.DB.Where("upi_identity_id = ?", identity.ID).
		Order("created_at DESC").
		First(&verification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Nothing to vote on: the identity has no verification history
			return nil, ErrNotFound
		}
		return nil, err
	}

	newVote := models.VerificationVote{
		VerificationID: verification.ID,
		UserID:         userID,
		Vote:           vote,
	}
	if err := db.DB.Create(&newVote).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateVote
		}
		return nil, err
	}

	if err := AddContribution(userID, ActionVote); err != nil {
		log.Printf("Failed to credit vote for user %d: %v", userID, err)
	}

	return &newVote, nil
}
