package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// Deal is a promo code applied at checkout.
type Deal struct {
	gorm.Model
	Code          string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description   string `json:"description"`
	DiscountType  string `gorm:"size:20;not null" json:"discountType"`
	DiscountValue int64  `gorm:"not null" json:"discountValue"`
	MinSubtotal   int64  `gorm:"not null;default:0" json:"minSubtotal"`
	MaxDiscount   int64  `gorm:"not null;default:0" json:"maxDiscount"`

	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`

	UsageLimit int  `gorm:"not null;default:0" json:"usageLimit"`
	UsedCount  int  `gorm:"not null;default:0" json:"usedCount"`
	IsActive   bool `gorm:"not null;default:true" json:"isActive"`
}
