package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	DB       *gorm.DB
	MenuRepo *repository.MenuRepository
}

func NewMenuService(db *gorm.DB, mr *repository.MenuRepository) *MenuService {
	return &MenuService{DB: db, MenuRepo: mr}
}

type CategoryIn struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

type MenuItemIn struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Price          int64  `json:"price" binding:"required,gt=0"`
	ImageURL       string `json:"imageUrl"`
	IsAvailable    *bool  `json:"isAvailable"`
	MenuCategoryID uint   `json:"menuCategoryId" binding:"required"`
}

type MenuItemDetail struct {
	entity.MenuItem
	repository.RatingAggregate
}

// ---------------- Categories ----------------

func (s *MenuService) ListCategories(ctx context.Context) ([]entity.MenuCategory, error) {
	return s.MenuRepo.ListCategories(s.DB.WithContext(ctx))
}

func (s *MenuService) CreateCategory(ctx context.Context, in *CategoryIn) (*entity.MenuCategory, error) {
	cat := &entity.MenuCategory{Name: strings.TrimSpace(in.Name), SortOrder: in.SortOrder}
	if cat.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.MenuRepo.CreateCategory(s.DB.WithContext(ctx), cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: category %q already exists", ErrInvalidInput, cat.Name)
		}
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, id uint, in *CategoryIn) (*entity.MenuCategory, error) {
	db := s.DB.WithContext(ctx)
	cat, err := s.MenuRepo.FindCategory(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		cat.Name = name
	}
	cat.SortOrder = in.SortOrder
	if err := s.MenuRepo.SaveCategory(db, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteCategory refuses while items still point at the category.
func (s *MenuService) DeleteCategory(ctx context.Context, id uint) error {
	db := s.DB.WithContext(ctx)
	n, err := s.MenuRepo.CountItemsInCategory(db, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryInUse
	}
	rows, err := s.MenuRepo.DeleteCategory(db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// ---------------- Items ----------------

func (s *MenuService) ListItems(ctx context.Context, f repository.MenuFilter) ([]entity.MenuItem, error) {
	return s.MenuRepo.ListItems(s.DB.WithContext(ctx), f)
}

func (s *MenuService) GetItem(ctx context.Context, id uint) (*MenuItemDetail, error) {
	db := s.DB.WithContext(ctx)
	m, err := s.findItem(db, id)
	if err != nil {
		return nil, err
	}
	agg, err := s.MenuRepo.RatingFor(db, id)
	if err != nil {
		return nil, err
	}
	return &MenuItemDetail{MenuItem: *m, RatingAggregate: agg}, nil
}

func (s *MenuService) CreateItem(ctx context.Context, in *MenuItemIn) (*entity.MenuItem, error) {
	db := s.DB.WithContext(ctx)
	m := &entity.MenuItem{IsAvailable: true}
	if err := s.fillItem(db, m, in); err != nil {
		return nil, err
	}
	if err := s.MenuRepo.CreateItem(db, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	db := s.DB.WithContext(ctx)
	m, err := s.findItem(db, id)
	if err != nil {
		return nil, err
	}
	if err := s.fillItem(db, m, in); err != nil {
		return nil, err
	}
	if err := s.MenuRepo.SaveItem(db, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id uint) error {
	n, err := s.MenuRepo.DeleteItem(s.DB.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (s *MenuService) SetAvailability(ctx context.Context, id uint, available bool) error {
	n, err := s.MenuRepo.SetAvailability(s.DB.WithContext(ctx), id, available)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (s *MenuService) findItem(db *gorm.DB, id uint) (*entity.MenuItem, error) {
	m, err := s.MenuRepo.FindItem(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	return m, err
}

func (s *MenuService) fillItem(db *gorm.DB, m *entity.MenuItem, in *MenuItemIn) error {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price <= 0 {
		return fmt.Errorf("%w: name and a positive price are required", ErrInvalidInput)
	}
	if _, err := s.MenuRepo.FindCategory(db, in.MenuCategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	m.Name = name
	m.Description = strings.TrimSpace(in.Description)
	m.Price = in.Price
	m.ImageURL = strings.TrimSpace(in.ImageURL)
	m.MenuCategoryID = in.MenuCategoryID
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	return nil
}
