package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"index" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	// snapshots at checkout time
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`

	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
	Note      string `json:"note,omitempty"`
}
