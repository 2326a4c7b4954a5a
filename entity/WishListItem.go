package entity

import (
	"time"
)

type WishListItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID     uint     `gorm:"uniqueIndex:uniq_user_wish" json:"userId"`
	MenuItemID uint     `gorm:"uniqueIndex:uniq_user_wish" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`
}
