package repository

import (
	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
)

// UserRepository only talks to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(db *gorm.DB, email string) (int64, error) {
	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *UserRepository) Update(db *gorm.DB, userID uint, updates map[string]any) error {
	return db.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	var user entity.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(db *gorm.DB, search string, page, limit int) ([]entity.User, int64, error) {
	q := db.Model(&entity.User{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []entity.User
	err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&users).Error
	return users, total, err
}

// AddPoints applies a signed delta. A negative delta only succeeds when the
// balance covers it; the affected row count tells the caller which happened.
func (r *UserRepository) AddPoints(tx *gorm.DB, userID uint, delta int64) (int64, error) {
	q := tx.Model(&entity.User{}).Where("id = ?", userID)
	if delta < 0 {
		q = q.Where("points_balance >= ?", -delta)
	}
	res := q.Update("points_balance", gorm.Expr("points_balance + ?", delta))
	return res.RowsAffected, res.Error
}

func (r *UserRepository) PointsBalance(db *gorm.DB, userID uint) (int64, error) {
	var row struct{ PointsBalance int64 }
	err := db.Model(&entity.User{}).Select("points_balance").Where("id = ?", userID).Take(&row).Error
	return row.PointsBalance, err
}
