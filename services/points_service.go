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

// PointsService keeps User.PointsBalance and the ledger in step. Every write
// helper takes the caller's transaction.
type PointsService struct {
	DB         *gorm.DB
	UserRepo   *repository.UserRepository
	PointsRepo *repository.PointsRepository
}

func NewPointsService(db *gorm.DB, ur *repository.UserRepository, pr *repository.PointsRepository) *PointsService {
	return &PointsService{DB: db, UserRepo: ur, PointsRepo: pr}
}

type PointsEntry struct {
	UserID       uint
	Type         string
	Points       int64
	Description  string
	OrderID      *uint
	RedemptionID *uint
}

func (s *PointsService) Earn(tx *gorm.DB, userID uint, points int64, desc string, orderID *uint) (*entity.UserPointsTransaction, error) {
	return s.apply(tx, PointsEntry{UserID: userID, Type: entity.PointsEarn, Points: points, Description: desc, OrderID: orderID})
}

func (s *PointsService) Refund(tx *gorm.DB, userID uint, points int64, desc string, orderID *uint) (*entity.UserPointsTransaction, error) {
	return s.apply(tx, PointsEntry{UserID: userID, Type: entity.PointsRefund, Points: points, Description: desc, OrderID: orderID})
}

// Spend deducts points, failing with ErrInsufficientPoints when the balance is short.
func (s *PointsService) Spend(tx *gorm.DB, userID uint, points int64, desc string, redemptionID *uint) (*entity.UserPointsTransaction, error) {
	return s.apply(tx, PointsEntry{UserID: userID, Type: entity.PointsRedeem, Points: -points, Description: desc, RedemptionID: redemptionID})
}

func (s *PointsService) apply(tx *gorm.DB, e PointsEntry) (*entity.UserPointsTransaction, error) {
	if e.Points == 0 {
		return nil, fmt.Errorf("%w: points must be non-zero", ErrInvalidInput)
	}

	n, err := s.UserRepo.AddPoints(tx, e.UserID, e.Points)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if e.Points < 0 {
			return nil, ErrInsufficientPoints
		}
		return nil, ErrUserNotFound
	}

	balance, err := s.UserRepo.PointsBalance(tx, e.UserID)
	if err != nil {
		return nil, err
	}

	row := &entity.UserPointsTransaction{
		UserID:       e.UserID,
		Type:         e.Type,
		Points:       e.Points,
		BalanceAfter: balance,
		Description:  e.Description,
		OrderID:      e.OrderID,
		RedemptionID: e.RedemptionID,
	}
	if err := s.PointsRepo.Append(tx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Adjust is the admin's manual correction; a negative amount deducts.
func (s *PointsService) Adjust(ctx context.Context, userID uint, points int64, reason string) (*entity.UserPointsTransaction, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	var row *entity.UserPointsTransaction
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		row, err = s.apply(tx, PointsEntry{UserID: userID, Type: entity.PointsAdjust, Points: points, Description: reason})
		return err
	})
	return row, err
}

type PointsSummary struct {
	Balance int64 `json:"balance"`
}

func (s *PointsService) Balance(ctx context.Context, userID uint) (int64, error) {
	b, err := s.UserRepo.PointsBalance(s.DB.WithContext(ctx), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrUserNotFound
	}
	return b, err
}

func (s *PointsService) History(ctx context.Context, userID uint, page, limit int) ([]entity.UserPointsTransaction, int64, error) {
	return s.PointsRepo.History(s.DB.WithContext(ctx), userID, page, limit)
}

// LedgerSum is the sum of the user's ledger rows.
func (s *PointsService) LedgerSum(ctx context.Context, userID uint) (int64, error) {
	return s.PointsRepo.Sum(s.DB.WithContext(ctx), userID)
}
