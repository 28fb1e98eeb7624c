package models

import (
	"time"
)

const (
	VoteSafe   = "safe"
	VoteUnsafe = "unsafe"
)

// VerificationVote is one user's opinion on one verification event. The
// composite unique index enforces at most one vote per (verification, user);
// a duplicate insert fails at the database and is never merged or overwritten.
type VerificationVote struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	VerificationID uint         `gorm:"not null;uniqueIndex:idx_verification_voter" json:"verification_id"`
	Verification   Verification `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"verification"`
	UserID         uint         `gorm:"not null;uniqueIndex:idx_verification_voter" json:"user_id"`
	Vote           string       `gorm:"size:10;not null" json:"vote"` // safe, unsafe
	CreatedAt      time.Time    `gorm:"index" json:"created_at"`
}
