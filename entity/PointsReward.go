package entity

import (
	"gorm.io/gorm"
)

const (
	RewardDiscount = "discount"
	RewardFreeItem = "free_item"
)

type PointsReward struct {
	gorm.Model
	Name           string `gorm:"size:150;not null" json:"name"`
	Description    string `json:"description"`
	PointsCost     int64  `gorm:"not null" json:"pointsCost"`
	RewardType     string `gorm:"size:20;not null" json:"rewardType"`
	DiscountAmount int64  `gorm:"not null;default:0" json:"discountAmount"`

	MenuItemID *uint     `json:"menuItemId,omitempty"`
	MenuItem   *MenuItem `json:"menuItem,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"isActive"`
}
