package models

import (
	"time"
)

const (
	ReportStatusOpen     = "open"
	ReportStatusResolved = "resolved"
	ReportStatusRejected = "rejected"
)

type Report struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UpiIdentityID uint        `gorm:"not null;index" json:"upi_identity_id"`
	UpiIdentity   UpiIdentity `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"upi_identity"`
	UserID        uint        `gorm:"not null;index" json:"user_id"` // Reporter
	Reason        string      `gorm:"size:200;not null" json:"reason"`
	Details       string      `gorm:"size:2000;not null" json:"details"`
	EvidenceURL   string      `gorm:"size:500" json:"evidence_url"`
	Status        string      `gorm:"size:20;default:'open';not null" json:"status"` // open, resolved, rejected
	ResolvedAt    *time.Time  `json:"resolved_at"`
	CreatedAt     time.Time   `json:"created_at"`
}
