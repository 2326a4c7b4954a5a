package entity

import (
	"time"
)

// CartItem rows are hard-deleted, so no gorm.Model soft-delete column.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `gorm:"index" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int    `gorm:"not null;default:1" json:"quantity"`
	Note     string `json:"note"`
}

func (ci *CartItem) LineTotal() int64 {
	return ci.MenuItem.Price * int64(ci.Quantity)
}
