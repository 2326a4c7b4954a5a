package repository

import (
	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishListRepository struct {
	DB *gorm.DB
}

func NewWishListRepository(db *gorm.DB) *WishListRepository {
	return &WishListRepository{DB: db}
}

func (r *WishListRepository) List(db *gorm.DB, userID uint) ([]entity.WishListItem, error) {
	var out []entity.WishListItem
	err := db.Preload("MenuItem").Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

// Add ignores the insert when the user already saved the item.
func (r *WishListRepository) Add(db *gorm.DB, userID, menuItemID uint) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.WishListItem{UserID: userID, MenuItemID: menuItemID}).Error
}

func (r *WishListRepository) Remove(db *gorm.DB, userID, menuItemID uint) (int64, error) {
	res := db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).Delete(&entity.WishListItem{})
	return res.RowsAffected, res.Error
}

func (r *WishListRepository) Contains(db *gorm.DB, userID, menuItemID uint) (bool, error) {
	var n int64
	err := db.Model(&entity.WishListItem{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&n).Error
	return n > 0, err
}
