package repository

import (
	"time"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
)

// RewardRepository covers the rewards catalogue and users' redemptions.
type RewardRepository struct {
	DB *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{DB: db}
}

// ---------------- Rewards ----------------

func (r *RewardRepository) Create(db *gorm.DB, rw *entity.PointsReward) error {
	active := rw.IsActive
	if err := db.Omit("MenuItem").Create(rw).Error; err != nil {
		return err
	}
	rw.IsActive = active
	return db.Model(rw).Update("is_active", active).Error
}

func (r *RewardRepository) Save(db *gorm.DB, rw *entity.PointsReward) error {
	return db.Omit("MenuItem").Save(rw).Error
}

func (r *RewardRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&entity.PointsReward{}, id)
	return res.RowsAffected, res.Error
}

func (r *RewardRepository) FindByID(db *gorm.DB, id uint) (*entity.PointsReward, error) {
	var rw entity.PointsReward
	if err := db.Preload("MenuItem").First(&rw, id).Error; err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *RewardRepository) List(db *gorm.DB, activeOnly bool) ([]entity.PointsReward, error) {
	q := db.Preload("MenuItem")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []entity.PointsReward
	err := q.Order("points_cost ASC, id ASC").Find(&out).Error
	return out, err
}

// ---------------- Redemptions ----------------

func (r *RewardRepository) CreateRedemption(tx *gorm.DB, red *entity.UserRedemption) error {
	return tx.Omit("PointsReward").Create(red).Error
}

func (r *RewardRepository) CodeExists(db *gorm.DB, code string) (bool, error) {
	var n int64
	err := db.Model(&entity.UserRedemption{}).Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

func (r *RewardRepository) FindRedemptionByCode(db *gorm.DB, userID uint, code string) (*entity.UserRedemption, error) {
	var red entity.UserRedemption
	err := db.Preload("PointsReward").
		Where("user_id = ? AND code = ?", userID, code).
		First(&red).Error
	if err != nil {
		return nil, err
	}
	return &red, nil
}

func (r *RewardRepository) ListRedemptions(db *gorm.DB, userID uint, unusedOnly bool) ([]entity.UserRedemption, error) {
	q := db.Preload("PointsReward").Preload("PointsReward.MenuItem").Where("user_id = ?", userID)
	if unusedOnly {
		q = q.Where("is_used = ?", false)
	}
	var out []entity.UserRedemption
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

// MarkUsed flips the redemption to used only if nobody got there first.
func (r *RewardRepository) MarkUsed(tx *gorm.DB, redemptionID, orderID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.UserRedemption{}).
		Where("id = ? AND is_used = ?", redemptionID, false).
		Updates(map[string]any{"is_used": true, "used_at": at, "order_id": orderID})
	return res.RowsAffected, res.Error
}
