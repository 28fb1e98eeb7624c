package models

import (
	"time"
)

// UserReputation holds the maintained lifetime counters behind a user's point
// total. The counters are bumped transactionally as actions complete; points
// and badge are always derived from them at read time, never stored.
type UserReputation struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User               User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ReportsCount       int       `gorm:"default:0;not null" json:"reports_count"`
	VerificationsCount int       `gorm:"default:0;not null" json:"verifications_count"`
	VotesCount         int       `gorm:"default:0;not null" json:"votes_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ContributionLog is the per-action audit trail behind the counters.
type ContributionLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Action    string    `gorm:"size:50;not null" json:"action"` // fraud_report, verification, community_vote
	Points    int       `gorm:"not null" json:"points"`
	CreatedAt time.Time `json:"created_at"`
}
