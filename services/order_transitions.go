package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxReasonLen = 500

// CanTransition allows one step forward along OrderFlow, and cancellation
// while the order is Pending or Confirmed.
func CanTransition(from, to entity.OrderStatus) bool {
	if to == entity.OrderCancelled {
		return from.Cancellable()
	}
	fi, ti := from.Step(), to.Step()
	return fi >= 0 && ti == fi+1
}

// UpdateStatus is the admin's status change. Cancelled goes through Cancel.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !to.Valid() {
		return nil, ErrInvalidStatus
	}
	if to == entity.OrderCancelled {
		return nil, fmt.Errorf("%w: use the cancel endpoint with a reason", ErrInvalidTransition)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if !CanTransition(o.Status, to) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.Status, to)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}

		if to == entity.OrderDelivered {
			return s.awardPoints(tx, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Detail(ctx, orderID)
}

func (s *OrderService) awardPoints(tx *gorm.DB, o *entity.Order) error {
	pts := s.PointsFor(o.Total)
	if pts <= 0 {
		return nil
	}
	if _, err := s.Points.Earn(tx, o.UserID, pts, "Order "+o.OrderNumber, &o.ID); err != nil {
		return err
	}
	return s.Repo.SetPointsEarned(tx, o.ID, pts)
}

// CancelByUser cancels one of the caller's own orders.
func (s *OrderService) CancelByUser(ctx context.Context, userID, orderID uint, reason string) (*entity.Order, error) {
	return s.cancel(ctx, orderID, userID, reason, func(o *entity.Order) error {
		if o.UserID != userID {
			return ErrOrderNotFound
		}
		return nil
	})
}

func (s *OrderService) CancelByAdmin(ctx context.Context, adminID, orderID uint, reason string) (*entity.Order, error) {
	return s.cancel(ctx, orderID, adminID, reason, nil)
}

// cancel records the reason, refunds spent points and gives the promo use back,
// all in the same transaction as the status change.
func (s *OrderService) cancel(ctx context.Context, orderID, actorID uint, reason string, check func(*entity.Order) error) (*entity.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	if len(reason) > maxReasonLen {
		return nil, fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, maxReasonLen)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(o); err != nil {
				return err
			}
		}
		if !o.Status.Cancellable() {
			return ErrNotCancellable
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}

		if err := s.Repo.CreateCancellation(tx, &entity.OrderCancellation{
			OrderID:        o.ID,
			UserID:         actorID,
			Reason:         reason,
			PointsRefunded: o.PointsSpent,
		}); err != nil {
			return err
		}

		if o.PointsSpent > 0 {
			if _, err := s.Points.Refund(tx, o.UserID, o.PointsSpent, "Cancelled order "+o.OrderNumber, &o.ID); err != nil {
				return err
			}
		}
		if o.DealID != nil {
			if err := s.DealRepo.DecrementUsage(tx, *o.DealID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("order cancelled", zap.Uint("orderId", orderID), zap.Uint("by", actorID))
	return s.Detail(ctx, orderID)
}
