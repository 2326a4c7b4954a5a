package repository

import (
	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
)

// PointsRepository reads and appends ledger rows. Rows are never updated.
type PointsRepository struct {
	DB *gorm.DB
}

func NewPointsRepository(db *gorm.DB) *PointsRepository {
	return &PointsRepository{DB: db}
}

func (r *PointsRepository) Append(tx *gorm.DB, t *entity.UserPointsTransaction) error {
	return tx.Create(t).Error
}

func (r *PointsRepository) History(db *gorm.DB, userID uint, page, limit int) ([]entity.UserPointsTransaction, int64, error) {
	q := db.Model(&entity.UserPointsTransaction{}).Where("user_id = ?", userID)
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.UserPointsTransaction
	err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

// Sum is the ledger total for the user; it should always equal the balance.
func (r *PointsRepository) Sum(db *gorm.DB, userID uint) (int64, error) {
	var n int64
	err := db.Model(&entity.UserPointsTransaction{}).
		Select("COALESCE(SUM(points), 0)").
		Where("user_id = ?", userID).
		Scan(&n).Error
	return n, err
}
