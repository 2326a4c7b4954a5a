package services

import (
	"context"
	"errors"
	"strings"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"gorm.io/gorm"
)

// UserService is the admin's view of customer accounts.
type UserService struct {
	DB       *gorm.DB
	UserRepo *repository.UserRepository
}

func NewUserService(db *gorm.DB, ur *repository.UserRepository) *UserService {
	return &UserService{DB: db, UserRepo: ur}
}

func (s *UserService) List(ctx context.Context, search string, page, limit int) ([]entity.User, int64, error) {
	return s.UserRepo.List(s.DB.WithContext(ctx), strings.TrimSpace(search), page, limit)
}

func (s *UserService) Get(ctx context.Context, id uint) (*entity.User, error) {
	u, err := s.UserRepo.FindByID(s.DB.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}
