package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/pkg/mail"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CheckoutService struct {
	DB        *gorm.DB
	Cart      *CartService
	Deals     *DealService
	Rewards   *RewardService
	OrderRepo *repository.OrderRepository
	DealRepo  *repository.DealRepository
	UserRepo  *repository.UserRepository
	Pricing   Pricing
	Mailer    mail.Mailer
	Log       *zap.Logger

	Now         func() time.Time
	OrderNumber func(time.Time) string
}

const orderNumberTries = 5

func NewCheckoutService(
	db *gorm.DB,
	cart *CartService,
	deals *DealService,
	rewards *RewardService,
	or *repository.OrderRepository,
	dr *repository.DealRepository,
	ur *repository.UserRepository,
	pricing Pricing,
	mailer mail.Mailer,
	log *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		DB: db, Cart: cart, Deals: deals, Rewards: rewards,
		OrderRepo: or, DealRepo: dr, UserRepo: ur,
		Pricing: pricing, Mailer: mailer, Log: log,
		Now: time.Now, OrderNumber: utils.NewOrderNumber,
	}
}

type CheckoutIn struct {
	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes"`
	PromoCode       string `json:"promoCode"`
	RedemptionCode  string `json:"redemptionCode"`
}

type QuoteOut struct {
	Totals
	PromoCode      string `json:"promoCode,omitempty"`
	RedemptionCode string `json:"redemptionCode,omitempty"`
}

// priced is a cart with its totals and whichever discount source applied.
type priced struct {
	cart       *entity.Cart
	totals     Totals
	deal       *entity.Deal
	redemption *entity.UserRedemption
}

// Quote previews the totals for the current cart without writing orders.
func (s *CheckoutService) Quote(ctx context.Context, userID uint, promo, redemption string) (*QuoteOut, error) {
	p, err := s.price(s.DB.WithContext(ctx), userID, promo, redemption)
	if err != nil {
		return nil, err
	}
	out := &QuoteOut{Totals: p.totals}
	if p.deal != nil {
		out.PromoCode = p.deal.Code
	}
	if p.redemption != nil {
		out.RedemptionCode = p.redemption.Code
	}
	return out, nil
}

func (s *CheckoutService) price(db *gorm.DB, userID uint, promo, redemption string) (*priced, error) {
	promo = strings.TrimSpace(promo)
	redemption = strings.TrimSpace(redemption)
	if promo != "" && redemption != "" {
		return nil, ErrMultipleDiscounts
	}

	c, err := s.Cart.loadConsolidated(db, userID)
	if err != nil {
		return nil, err
	}
	p := &priced{cart: c}
	subtotal := Subtotal(c.Items)

	var discount int64
	switch {
	case promo != "":
		d, err := s.Deals.Validate(db, promo, subtotal, s.Now())
		if err != nil {
			return nil, err
		}
		p.deal = d
		discount = DealDiscount(d, subtotal)
	case redemption != "":
		red, err := s.Rewards.FindRedemption(db, userID, redemption)
		if err != nil {
			return nil, err
		}
		discount, err = RedemptionDiscount(&red.PointsReward, c.Items, subtotal)
		if err != nil {
			return nil, err
		}
		p.redemption = red
	}

	p.totals = s.Pricing.Compute(subtotal, discount)
	return p, nil
}

// PlaceOrder turns the cart into a Pending order. The order, usage counters
// and the cleared cart commit together; the confirmation email is sent after.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint, in *CheckoutIn) (*entity.Order, error) {
	var (
		order *entity.Order
		user  *entity.User
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = s.UserRepo.FindByID(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		count, err := s.Cart.CartRepo.Count(tx, userID)
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrCartEmpty
		}

		p, err := s.price(tx, userID, in.PromoCode, in.RedemptionCode)
		if err != nil {
			return err
		}
		for i := range p.cart.Items {
			if !p.cart.Items[i].MenuItem.IsAvailable {
				return fmt.Errorf("%w: %s", ErrItemUnavailable, p.cart.Items[i].MenuItem.Name)
			}
		}

		address := strings.TrimSpace(in.DeliveryAddress)
		if address == "" {
			address = user.Address
		}
		if address == "" {
			return fmt.Errorf("%w: delivery address is required", ErrInvalidInput)
		}

		now := s.Now()
		number, err := s.uniqueOrderNumber(tx, now)
		if err != nil {
			return err
		}
		order = newOrder(userID, p, number, address, strings.TrimSpace(in.Notes))
		if err := s.OrderRepo.CreateOrder(tx, order); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrOrderNumberTaken
			}
			return err
		}

		if p.deal != nil {
			n, err := s.DealRepo.IncrementUsage(tx, p.deal.ID)
			if err != nil {
				return err
			}
			if n == 0 {
				return ErrDealExhausted
			}
		}
		if p.redemption != nil {
			n, err := s.Rewards.RewardRepo.MarkUsed(tx, p.redemption.ID, order.ID, s.Now())
			if err != nil {
				return err
			}
			if n == 0 {
				return ErrRedemptionUsed
			}
		}

		return s.Cart.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, user, order)
	return order, nil
}

// uniqueOrderNumber retries like redemption codes do; a number taken by a
// concurrent checkout after the check still fails the insert.
func (s *CheckoutService) uniqueOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	for i := 0; i < orderNumberTries; i++ {
		number := s.OrderNumber(now)
		taken, err := s.OrderRepo.OrderNumberExists(tx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", ErrOrderNumberTaken
}

func newOrder(userID uint, p *priced, number, address, notes string) *entity.Order {
	o := &entity.Order{
		OrderNumber:     number,
		UserID:          userID,
		Status:          entity.OrderPending,
		Subtotal:        p.totals.Subtotal,
		Discount:        p.totals.Discount,
		Tax:             p.totals.Tax,
		DeliveryFee:     p.totals.DeliveryFee,
		Total:           p.totals.Total,
		DeliveryAddress: address,
		Notes:           notes,
	}
	if p.deal != nil {
		o.DealID = &p.deal.ID
		o.PromoCode = p.deal.Code
	}
	if p.redemption != nil {
		o.RedemptionID = &p.redemption.ID
		o.PointsSpent = p.redemption.PointsSpent
	}

	o.Items = make([]entity.OrderItem, 0, len(p.cart.Items))
	for _, it := range p.cart.Items {
		o.Items = append(o.Items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.MenuItem.Name,
			UnitPrice:  it.MenuItem.Price,
			Quantity:   it.Quantity,
			LineTotal:  it.LineTotal(),
			Note:       it.Note,
		})
	}
	return o
}

// sendConfirmation never fails the checkout.
func (s *CheckoutService) sendConfirmation(ctx context.Context, user *entity.User, o *entity.Order) {
	if s.Mailer == nil || user == nil {
		return
	}
	msg := mail.Message{
		To:      user.Email,
		Subject: "Order " + o.OrderNumber + " received",
		Body: fmt.Sprintf("Hi %s, we received your order %s. Total: RM%d.%02d.",
			user.FullName(), o.OrderNumber, o.Total/100, o.Total%100),
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		s.Log.Warn("order confirmation email failed",
			zap.String("orderNumber", o.OrderNumber),
			zap.Uint("userId", user.ID),
			zap.Error(err),
		)
	}
}
