package entity

import (
	"gorm.io/gorm"
)

type ReviewResponse struct {
	gorm.Model
	ReviewID uint   `gorm:"uniqueIndex" json:"reviewId"`
	AdminID  uint   `json:"adminId"`
	Body     string `gorm:"not null" json:"body"`
}
