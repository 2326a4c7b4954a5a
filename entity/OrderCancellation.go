package entity

import (
	"gorm.io/gorm"
)

type OrderCancellation struct {
	gorm.Model
	OrderID uint `gorm:"uniqueIndex" json:"orderId"`

	// who cancelled: the customer or an admin
	UserID uint `json:"userId"`

	Reason         string `gorm:"size:500;not null" json:"reason"`
	PointsRefunded int64  `json:"pointsRefunded"`
}
