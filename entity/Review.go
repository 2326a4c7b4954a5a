package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:uniq_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:uniq_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	// the delivered order that made the user eligible
	OrderID uint `json:"orderId"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`

	HelpfulCount    int `gorm:"not null;default:0" json:"helpfulCount"`
	NotHelpfulCount int `gorm:"not null;default:0" json:"notHelpfulCount"`

	Response *ReviewResponse `json:"response,omitempty"`
	Votes    []ReviewVote    `json:"-"`
}
