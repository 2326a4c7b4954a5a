package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"gorm.io/gorm"
)

const (
	redemptionCodeLen   = 8
	redemptionCodeTries = 5
)

type RewardService struct {
	DB         *gorm.DB
	RewardRepo *repository.RewardRepository
	MenuRepo   *repository.MenuRepository
	Points     *PointsService
}

func NewRewardService(db *gorm.DB, rr *repository.RewardRepository, mr *repository.MenuRepository, ps *PointsService) *RewardService {
	return &RewardService{DB: db, RewardRepo: rr, MenuRepo: mr, Points: ps}
}

type RewardIn struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	PointsCost     int64  `json:"pointsCost" binding:"required,gt=0"`
	RewardType     string `json:"rewardType" binding:"required,oneof=discount free_item"`
	DiscountAmount int64  `json:"discountAmount" binding:"min=0"`
	MenuItemID     *uint  `json:"menuItemId"`
	IsActive       *bool  `json:"isActive"`
}

func (s *RewardService) ListActive(ctx context.Context) ([]entity.PointsReward, error) {
	return s.RewardRepo.List(s.DB.WithContext(ctx), true)
}

func (s *RewardService) ListAll(ctx context.Context) ([]entity.PointsReward, error) {
	return s.RewardRepo.List(s.DB.WithContext(ctx), false)
}

func (s *RewardService) Get(ctx context.Context, id uint) (*entity.PointsReward, error) {
	rw, err := s.RewardRepo.FindByID(s.DB.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRewardNotFound
	}
	return rw, err
}

func (s *RewardService) Create(ctx context.Context, in *RewardIn) (*entity.PointsReward, error) {
	rw := &entity.PointsReward{IsActive: true}
	if err := s.fill(ctx, rw, in); err != nil {
		return nil, err
	}
	if err := s.RewardRepo.Create(s.DB.WithContext(ctx), rw); err != nil {
		return nil, err
	}
	return rw, nil
}

func (s *RewardService) Update(ctx context.Context, id uint, in *RewardIn) (*entity.PointsReward, error) {
	rw, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.fill(ctx, rw, in); err != nil {
		return nil, err
	}
	if err := s.RewardRepo.Save(s.DB.WithContext(ctx), rw); err != nil {
		return nil, err
	}
	return rw, nil
}

func (s *RewardService) Delete(ctx context.Context, id uint) error {
	n, err := s.RewardRepo.Delete(s.DB.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRewardNotFound
	}
	return nil
}

func (s *RewardService) fill(ctx context.Context, rw *entity.PointsReward, in *RewardIn) error {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.PointsCost <= 0 {
		return fmt.Errorf("%w: name and a positive points cost are required", ErrInvalidInput)
	}
	switch in.RewardType {
	case entity.RewardDiscount:
		if in.DiscountAmount <= 0 {
			return fmt.Errorf("%w: discount rewards need a discount amount", ErrInvalidInput)
		}
		rw.MenuItemID = nil
	case entity.RewardFreeItem:
		if in.MenuItemID == nil {
			return fmt.Errorf("%w: free item rewards need a menu item", ErrInvalidInput)
		}
		if _, err := s.MenuRepo.FindItem(s.DB.WithContext(ctx), *in.MenuItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}
		rw.MenuItemID = in.MenuItemID
	default:
		return fmt.Errorf("%w: unknown reward type %q", ErrInvalidInput, in.RewardType)
	}

	rw.Name = name
	rw.Description = strings.TrimSpace(in.Description)
	rw.PointsCost = in.PointsCost
	rw.RewardType = in.RewardType
	rw.DiscountAmount = in.DiscountAmount
	rw.MenuItem = nil
	if in.IsActive != nil {
		rw.IsActive = *in.IsActive
	}
	return nil
}

// Redeem spends the reward's points and issues a one-time code.
func (s *RewardService) Redeem(ctx context.Context, userID, rewardID uint) (*entity.UserRedemption, error) {
	rw, err := s.Get(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if !rw.IsActive {
		return nil, ErrRewardInactive
	}

	var red *entity.UserRedemption
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code, err := s.uniqueCode(tx)
		if err != nil {
			return err
		}
		red = &entity.UserRedemption{
			UserID:         userID,
			PointsRewardID: rw.ID,
			Code:           code,
			PointsSpent:    rw.PointsCost,
		}
		if err := s.RewardRepo.CreateRedemption(tx, red); err != nil {
			return err
		}
		_, err = s.Points.Spend(tx, userID, rw.PointsCost, "Redeemed "+rw.Name, &red.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	red.PointsReward = *rw
	return red, nil
}

func (s *RewardService) uniqueCode(tx *gorm.DB) (string, error) {
	for i := 0; i < redemptionCodeTries; i++ {
		code, err := utils.RandomCode(redemptionCodeLen)
		if err != nil {
			return "", err
		}
		taken, err := s.RewardRepo.CodeExists(tx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", errors.New("could not allocate a redemption code")
}

func (s *RewardService) ListForUser(ctx context.Context, userID uint, unusedOnly bool) ([]entity.UserRedemption, error) {
	return s.RewardRepo.ListRedemptions(s.DB.WithContext(ctx), userID, unusedOnly)
}

// FindRedemption looks a code up for checkout; codes are matched upper-case.
func (s *RewardService) FindRedemption(db *gorm.DB, userID uint, code string) (*entity.UserRedemption, error) {
	red, err := s.RewardRepo.FindRedemptionByCode(db, userID, strings.ToUpper(strings.TrimSpace(code)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRedemptionNotFound
	}
	if err != nil {
		return nil, err
	}
	if red.IsUsed {
		return nil, ErrRedemptionUsed
	}
	return red, nil
}
