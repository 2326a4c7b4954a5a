package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `gorm:"not null;default:true" json:"isAvailable"`

	MenuCategoryID uint         `gorm:"index" json:"menuCategoryId"`
	MenuCategory   MenuCategory `json:"-"`

	Reviews []Review `json:"-"`
}
