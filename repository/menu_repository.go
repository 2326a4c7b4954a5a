package repository

import (
	"strings"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

type MenuFilter struct {
	CategoryID    uint
	Search        string
	AvailableOnly bool
}

func (r *MenuRepository) ListCategories(db *gorm.DB) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := db.Order("sort_order ASC, name ASC").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) FindCategory(db *gorm.DB, id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := db.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) CountItemsInCategory(db *gorm.DB, categoryID uint) (int64, error) {
	var n int64
	err := db.Model(&entity.MenuItem{}).Where("menu_category_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *MenuRepository) ListItems(db *gorm.DB, f MenuFilter) ([]entity.MenuItem, error) {
	q := db.Model(&entity.MenuItem{})
	if f.CategoryID != 0 {
		q = q.Where("menu_category_id = ?", f.CategoryID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}

	var items []entity.MenuItem
	err := q.Order("menu_category_id ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItem(db *gorm.DB, id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

type RatingAggregate struct {
	Average float64 `json:"averageRating"`
	Count   int64   `json:"reviewCount"`
}

func (r *MenuRepository) RatingFor(db *gorm.DB, menuItemID uint) (RatingAggregate, error) {
	var a RatingAggregate
	err := db.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("menu_item_id = ?", menuItemID).
		Scan(&a).Error
	return a, err
}

// ---------------- Admin writes ----------------

func (r *MenuRepository) CreateCategory(db *gorm.DB, cat *entity.MenuCategory) error {
	return db.Create(cat).Error
}

func (r *MenuRepository) SaveCategory(db *gorm.DB, cat *entity.MenuCategory) error {
	return db.Save(cat).Error
}

func (r *MenuRepository) DeleteCategory(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&entity.MenuCategory{}, id)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) CreateItem(db *gorm.DB, m *entity.MenuItem) error {
	available := m.IsAvailable
	if err := db.Omit("MenuCategory").Create(m).Error; err != nil {
		return err
	}
	m.IsAvailable = available
	return db.Model(m).Update("is_available", available).Error
}

func (r *MenuRepository) SaveItem(db *gorm.DB, m *entity.MenuItem) error {
	return db.Omit("MenuCategory").Save(m).Error
}

func (r *MenuRepository) DeleteItem(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) SetAvailability(db *gorm.DB, id uint, available bool) (int64, error) {
	res := db.Model(&entity.MenuItem{}).Where("id = ?", id).Update("is_available", available)
	return res.RowsAffected, res.Error
}
