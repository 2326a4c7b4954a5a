package entity

import (
	"time"
)

const (
	PointsEarn   = "earn"
	PointsRedeem = "redeem"
	PointsRefund = "refund"
	PointsAdjust = "adjust"
)

// UserPointsTransaction is append-only; it has no UpdatedAt/DeletedAt.
type UserPointsTransaction struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	Type         string `gorm:"size:20;not null" json:"type"`
	Points       int64  `gorm:"not null" json:"points"`
	BalanceAfter int64  `gorm:"not null" json:"balanceAfter"`
	Description  string `json:"description"`

	OrderID      *uint `json:"orderId,omitempty"`
	RedemptionID *uint `json:"redemptionId,omitempty"`
}
