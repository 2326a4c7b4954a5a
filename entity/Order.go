package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"size:32;uniqueIndex;not null" json:"orderNumber"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Status OrderStatus `gorm:"size:32;not null;index" json:"status"`

	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	Tax         int64 `json:"tax"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`

	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes"`

	DealID    *uint  `json:"dealId,omitempty"`
	PromoCode string `json:"promoCode,omitempty"`

	RedemptionID *uint `json:"redemptionId,omitempty"`
	PointsSpent  int64 `gorm:"not null;default:0" json:"pointsSpent"`
	PointsEarned int64 `gorm:"not null;default:0" json:"pointsEarned"`

	Items        []OrderItem        `json:"items,omitempty"`
	Cancellation *OrderCancellation `json:"cancellation,omitempty"`
}
