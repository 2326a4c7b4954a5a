package entity

import (
	"time"

	"gorm.io/gorm"
)

type ChatMessage struct {
	gorm.Model
	ChatSessionID uint        `gorm:"index" json:"chatSessionId"`
	ChatSession   ChatSession `json:"-"`

	SenderID    uint       `json:"senderId"`
	IsFromStaff bool       `json:"isFromStaff"`
	Body        string     `gorm:"not null" json:"body"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
}
