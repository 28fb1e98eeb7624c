package models

import (
	"time"
)

// UpiIdentity is the canonical record for one payment handle. Unique by the
// handle string; the unique index is what makes concurrent get-or-create safe.
type UpiIdentity struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UpiID      string    `gorm:"size:100;uniqueIndex;not null" json:"upi_id"` // local-part@domain
	LastSeenAt time.Time `json:"last_seen_at"`                                // Updated on every successful verification
	CreatedAt  time.Time `json:"created_at"`
}
