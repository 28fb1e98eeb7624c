package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DisplayName string    `gorm:"size:50;not null" json:"display_name"` // Shown on the leaderboard
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`                           // Hash
	Role        string    `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
