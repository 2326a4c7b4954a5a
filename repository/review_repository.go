package repository

import (
	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(db *gorm.DB, rev *entity.Review) error {
	return db.Create(rev).Error
}

func (r *ReviewRepository) Find(db *gorm.DB, id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := db.Preload("Response").First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) ExistsForUserItem(db *gorm.DB, userID, menuItemID uint) (bool, error) {
	var n int64
	err := db.Model(&entity.Review{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&n).Error
	return n > 0, err
}

func (r *ReviewRepository) ListForItem(db *gorm.DB, menuItemID uint, page, limit int) ([]entity.Review, int64, error) {
	return r.list(db.Where("menu_item_id = ?", menuItemID), page, limit)
}

func (r *ReviewRepository) ListForUser(db *gorm.DB, userID uint, page, limit int) ([]entity.Review, int64, error) {
	return r.list(db.Where("user_id = ?", userID), page, limit)
}

func (r *ReviewRepository) ListAll(db *gorm.DB, page, limit int) ([]entity.Review, int64, error) {
	return r.list(db, page, limit)
}

func (r *ReviewRepository) list(q *gorm.DB, page, limit int) ([]entity.Review, int64, error) {
	q = q.Model(&entity.Review{})
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Review
	err := q.Preload("Response").
		Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

func (r *ReviewRepository) FindVote(db *gorm.DB, reviewID, userID uint) (*entity.ReviewVote, error) {
	var v entity.ReviewVote
	if err := db.Where("review_id = ? AND user_id = ?", reviewID, userID).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// BumpCounters adds signed deltas to the helpful/not-helpful counters.
func (r *ReviewRepository) BumpCounters(tx *gorm.DB, reviewID uint, helpful, notHelpful int) error {
	return tx.Model(&entity.Review{}).Where("id = ?", reviewID).Updates(map[string]any{
		"helpful_count":     gorm.Expr("helpful_count + ?", helpful),
		"not_helpful_count": gorm.Expr("not_helpful_count + ?", notHelpful),
	}).Error
}

func (r *ReviewRepository) Update(db *gorm.DB, id uint, updates map[string]any) error {
	return db.Model(&entity.Review{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the review with its votes and response for good, so the user
// may review the item again.
func (r *ReviewRepository) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Where("review_id = ?", id).Delete(&entity.ReviewVote{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("review_id = ?", id).Delete(&entity.ReviewResponse{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Review{}, id).Error
}

func (r *ReviewRepository) CreateVote(tx *gorm.DB, v *entity.ReviewVote) error {
	return tx.Create(v).Error
}

func (r *ReviewRepository) SetVote(tx *gorm.DB, voteID uint, helpful bool) error {
	return tx.Model(&entity.ReviewVote{}).Where("id = ?", voteID).Update("is_helpful", helpful).Error
}

// ---------------- Responses ----------------

func (r *ReviewRepository) FindResponse(db *gorm.DB, reviewID uint) (*entity.ReviewResponse, error) {
	var res entity.ReviewResponse
	if err := db.Where("review_id = ?", reviewID).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReviewRepository) SaveResponse(db *gorm.DB, res *entity.ReviewResponse) error {
	return db.Save(res).Error
}

// DeleteResponse hard-deletes so a new response can reuse the unique review id.
func (r *ReviewRepository) DeleteResponse(db *gorm.DB, reviewID uint) (int64, error) {
	res := db.Unscoped().Where("review_id = ?", reviewID).Delete(&entity.ReviewResponse{})
	return res.RowsAffected, res.Error
}
