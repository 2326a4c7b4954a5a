package repository

import (
	"time"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
)

type DealRepository struct {
	DB *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{DB: db}
}

// Create writes IsActive explicitly since a false value would lose to the column default.
func (r *DealRepository) Create(db *gorm.DB, d *entity.Deal) error {
	active := d.IsActive
	if err := db.Create(d).Error; err != nil {
		return err
	}
	d.IsActive = active
	return db.Model(d).Update("is_active", active).Error
}

func (r *DealRepository) Save(db *gorm.DB, d *entity.Deal) error {
	return db.Save(d).Error
}

func (r *DealRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&entity.Deal{}, id)
	return res.RowsAffected, res.Error
}

func (r *DealRepository) FindByID(db *gorm.DB, id uint) (*entity.Deal, error) {
	var d entity.Deal
	if err := db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DealRepository) FindByCode(db *gorm.DB, code string) (*entity.Deal, error) {
	var d entity.Deal
	if err := db.Where("code = ?", code).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DealRepository) List(db *gorm.DB) ([]entity.Deal, error) {
	var out []entity.Deal
	err := db.Order("id DESC").Find(&out).Error
	return out, err
}

// ListActive returns deals that are switched on and inside their date window.
func (r *DealRepository) ListActive(db *gorm.DB, now time.Time) ([]entity.Deal, error) {
	var out []entity.Deal
	err := db.Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Where("usage_limit = 0 OR used_count < usage_limit").
		Order("id DESC").
		Find(&out).Error
	return out, err
}

// IncrementUsage only succeeds while the deal is under its usage limit.
func (r *DealRepository) IncrementUsage(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Model(&entity.Deal{}).
		Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", id).
		Update("used_count", gorm.Expr("used_count + 1"))
	return res.RowsAffected, res.Error
}

func (r *DealRepository) DecrementUsage(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.Deal{}).
		Where("id = ? AND used_count > 0", id).
		Update("used_count", gorm.Expr("used_count - 1")).Error
}
