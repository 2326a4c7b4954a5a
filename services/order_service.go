package services

import (
	"context"
	"errors"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	DealRepo *repository.DealRepository
	Points   *PointsService
	Log      *zap.Logger

	PointsPerRinggit int64
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	dealRepo *repository.DealRepository,
	points *PointsService,
	pointsPerRinggit int64,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		DB:               db,
		Repo:             repo,
		DealRepo:         dealRepo,
		Points:           points,
		Log:              log,
		PointsPerRinggit: pointsPerRinggit,
	}
}

type OrderListIn struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type TrackOut struct {
	OrderID     uint                 `json:"orderId"`
	OrderNumber string               `json:"orderNumber"`
	Status      entity.OrderStatus   `json:"status"`
	Step        int                  `json:"step"`
	Steps       []entity.OrderStatus `json:"steps"`
	Cancelled   bool                 `json:"cancelled"`
}

// ----- Customer -----

func (s *OrderService) ListForUser(ctx context.Context, userID uint, in OrderListIn) ([]entity.Order, int64, error) {
	return s.list(ctx, userID, in)
}

func (s *OrderService) DetailForUser(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(s.DB.WithContext(ctx), userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// Track reports where the order sits on the delivery chain.
func (s *OrderService) Track(ctx context.Context, userID, orderID uint) (*TrackOut, error) {
	o, err := s.DetailForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return &TrackOut{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Step:        o.Status.Step(),
		Steps:       entity.OrderFlow,
		Cancelled:   o.Status == entity.OrderCancelled,
	}, nil
}

// ----- Admin -----

func (s *OrderService) ListAll(ctx context.Context, in OrderListIn) ([]entity.Order, int64, error) {
	return s.list(ctx, 0, in)
}

func (s *OrderService) Detail(ctx context.Context, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(s.DB.WithContext(ctx), orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *OrderService) list(ctx context.Context, userID uint, in OrderListIn) ([]entity.Order, int64, error) {
	status := entity.OrderStatus(in.Status)
	if status != "" && !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	return s.Repo.ListOrders(s.DB.WithContext(ctx), repository.OrderQuery{
		UserID: userID,
		Status: status,
		Page:   in.Page,
		Limit:  in.Limit,
	})
}

// PointsFor is the loyalty points an order of total sen earns.
func (s *OrderService) PointsFor(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total / 100) * s.PointsPerRinggit
}

func (s *OrderService) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	return s.Repo.CountByStatus(s.DB.WithContext(ctx))
}
