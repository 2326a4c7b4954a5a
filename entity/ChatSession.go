package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	ChatOpen   = "open"
	ChatClosed = "closed"
)

type ChatSession struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	// staff member handling the session, nil until assigned
	AdminID *uint `json:"adminId,omitempty"`

	Subject       string     `json:"subject"`
	Status        string     `gorm:"size:20;not null;default:open;index" json:"status"`
	ClosedAt      *time.Time `json:"closedAt,omitempty"`
	LastMessageAt time.Time  `json:"lastMessageAt"`

	Messages []ChatMessage `json:"-"`
}
