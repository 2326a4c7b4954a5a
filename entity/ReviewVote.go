package entity

import (
	"time"
)

type ReviewVote struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ReviewID  uint `gorm:"uniqueIndex:uniq_review_voter" json:"reviewId"`
	UserID    uint `gorm:"uniqueIndex:uniq_review_voter" json:"userId"`
	IsHelpful bool `json:"isHelpful"`
}
