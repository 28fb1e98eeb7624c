package models

import (
	"time"
)

// Verification is one scoring event against one identity. Immutable once
// written; it is a historical record, not a cache of the current score.
type Verification struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UpiIdentityID uint        `gorm:"not null;index" json:"upi_identity_id"`
	UpiIdentity   UpiIdentity `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"upi_identity"`
	UserID        uint        `gorm:"not null;index" json:"user_id"`
	RiskScore     int         `gorm:"not null" json:"risk_score"`          // 0-100
	RiskLevel     string      `gorm:"size:10;not null" json:"risk_level"`  // low, medium, high
	Reason        string      `gorm:"size:200;not null" json:"reason"`     // Human-readable rationale
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`
}
