package repository

import (
	"errors"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty unsaved cart when none exists.
func (r *CartRepository) GetCartWithItems(db *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := db.Where("user_id = ?", userID).
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("cart_items.id ASC") }).
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(db *gorm.DB, userID uint) (*entity.Cart, error) {
	c := entity.Cart{UserID: userID}
	if err := db.Where(entity.Cart{UserID: userID}).FirstOrCreate(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindItem returns the first row for the menu item; duplicates may exist until consolidation.
func (r *CartRepository) FindItem(db *gorm.DB, cartID, menuItemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := db.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		Order("id ASC").First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) CreateItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Create(it).Error
}

func (r *CartRepository) SetQuantity(tx *gorm.DB, itemID uint, qty int) error {
	return tx.Model(&entity.CartItem{}).Where("id = ?", itemID).Update("quantity", qty).Error
}

func (r *CartRepository) DeleteItems(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Where("id IN ?", ids).Delete(&entity.CartItem{}).Error
}

// UpdateQty only touches rows in the user's own cart.
func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id IN (?)", itemID, r.cartIDs(tx, userID)).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND cart_id IN (?)", itemID, r.cartIDs(tx, userID)).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	return tx.Where("cart_id IN (?)", r.cartIDs(tx, userID)).Delete(&entity.CartItem{}).Error
}

// Count sums quantities across the user's cart.
func (r *CartRepository) Count(db *gorm.DB, userID uint) (int64, error) {
	var n int64
	err := db.Model(&entity.CartItem{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("cart_id IN (?)", r.cartIDs(db, userID)).
		Scan(&n).Error
	return n, err
}

func (r *CartRepository) cartIDs(db *gorm.DB, userID uint) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&entity.Cart{}).Select("id").Where("user_id = ?", userID)
}
