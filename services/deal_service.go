package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"gorm.io/gorm"
)

type DealService struct {
	DB       *gorm.DB
	DealRepo *repository.DealRepository
}

func NewDealService(db *gorm.DB, dr *repository.DealRepository) *DealService {
	return &DealService{DB: db, DealRepo: dr}
}

type DealIn struct {
	Code          string     `json:"code" binding:"required"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discountType" binding:"required,oneof=percent fixed"`
	DiscountValue int64      `json:"discountValue" binding:"required,gt=0"`
	MinSubtotal   int64      `json:"minSubtotal" binding:"min=0"`
	MaxDiscount   int64      `json:"maxDiscount" binding:"min=0"`
	StartsAt      *time.Time `json:"startsAt"`
	EndsAt        *time.Time `json:"endsAt"`
	UsageLimit    int        `json:"usageLimit" binding:"min=0"`
	IsActive      *bool      `json:"isActive"`
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *DealService) ListActive(ctx context.Context, now time.Time) ([]entity.Deal, error) {
	return s.DealRepo.ListActive(s.DB.WithContext(ctx), now)
}

func (s *DealService) ListAll(ctx context.Context) ([]entity.Deal, error) {
	return s.DealRepo.List(s.DB.WithContext(ctx))
}

func (s *DealService) Get(ctx context.Context, id uint) (*entity.Deal, error) {
	d, err := s.DealRepo.FindByID(s.DB.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDealNotFound
	}
	return d, err
}

func (s *DealService) Create(ctx context.Context, in *DealIn) (*entity.Deal, error) {
	d := &entity.Deal{IsActive: true}
	if err := fillDeal(d, in); err != nil {
		return nil, err
	}
	if err := s.DealRepo.Create(s.DB.WithContext(ctx), d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDealCodeTaken
		}
		return nil, err
	}
	return d, nil
}

func (s *DealService) Update(ctx context.Context, id uint, in *DealIn) (*entity.Deal, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fillDeal(d, in); err != nil {
		return nil, err
	}
	if err := s.DealRepo.Save(s.DB.WithContext(ctx), d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDealCodeTaken
		}
		return nil, err
	}
	return d, nil
}

func (s *DealService) Delete(ctx context.Context, id uint) error {
	n, err := s.DealRepo.Delete(s.DB.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDealNotFound
	}
	return nil
}

// Validate resolves a promo code and checks it against the subtotal.
func (s *DealService) Validate(db *gorm.DB, code string, subtotal int64, now time.Time) (*entity.Deal, error) {
	d, err := s.DealRepo.FindByCode(db, NormalizeCode(code))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDealNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := CheckDeal(d, subtotal, now); err != nil {
		return nil, err
	}
	return d, nil
}

func fillDeal(d *entity.Deal, in *DealIn) error {
	code := NormalizeCode(in.Code)
	if code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if in.DiscountType == entity.DiscountPercent && in.DiscountValue > 100 {
		return fmt.Errorf("%w: percent discount cannot exceed 100", ErrInvalidInput)
	}
	if in.DiscountType != entity.DiscountPercent && in.DiscountType != entity.DiscountFixed {
		return fmt.Errorf("%w: unknown discount type %q", ErrInvalidInput, in.DiscountType)
	}
	if in.StartsAt != nil && in.EndsAt != nil && in.EndsAt.Before(*in.StartsAt) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	d.Code = code
	d.Description = strings.TrimSpace(in.Description)
	d.DiscountType = in.DiscountType
	d.DiscountValue = in.DiscountValue
	d.MinSubtotal = in.MinSubtotal
	d.MaxDiscount = in.MaxDiscount
	d.StartsAt = in.StartsAt
	d.EndsAt = in.EndsAt
	d.UsageLimit = in.UsageLimit
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	return nil
}
