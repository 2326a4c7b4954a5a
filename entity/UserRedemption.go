package entity

import (
	"time"

	"gorm.io/gorm"
)

type UserRedemption struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	PointsRewardID uint         `json:"pointsRewardId"`
	PointsReward   PointsReward `json:"reward"`

	Code        string     `gorm:"size:8;uniqueIndex;not null" json:"code"`
	PointsSpent int64      `gorm:"not null" json:"pointsSpent"`
	IsUsed      bool       `gorm:"not null;default:false" json:"isUsed"`
	UsedAt      *time.Time `json:"usedAt,omitempty"`
	OrderID     *uint      `json:"orderId,omitempty"`
}
