package services

import (
	"time"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/shopspring/decimal"
)

// Pricing holds the checkout rates. Money is in sen.
type Pricing struct {
	TaxRate               decimal.Decimal
	DeliveryFee           int64
	FreeDeliveryThreshold int64
}

type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	Tax         int64 `json:"tax"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}

func Subtotal(items []entity.CartItem) int64 {
	var sum int64
	for i := range items {
		sum += items[i].LineTotal()
	}
	return sum
}

// Compute applies the discount, tax on the discounted amount, and the delivery
// fee, which is waived once the subtotal reaches the threshold.
func (p Pricing) Compute(subtotal, discount int64) Totals {
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}

	taxable := decimal.NewFromInt(subtotal - discount)
	tax := taxable.Mul(p.TaxRate).Round(0).IntPart()

	fee := p.DeliveryFee
	if subtotal == 0 || (p.FreeDeliveryThreshold > 0 && subtotal >= p.FreeDeliveryThreshold) {
		fee = 0
	}

	return Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal - discount + tax + fee,
	}
}

// CheckDeal reports why a deal cannot be used for the subtotal, or nil.
func CheckDeal(d *entity.Deal, subtotal int64, now time.Time) error {
	if !d.IsActive {
		return ErrDealInactive
	}
	if d.StartsAt != nil && now.Before(*d.StartsAt) {
		return ErrDealExpired
	}
	if d.EndsAt != nil && now.After(*d.EndsAt) {
		return ErrDealExpired
	}
	if d.UsageLimit > 0 && d.UsedCount >= d.UsageLimit {
		return ErrDealExhausted
	}
	if subtotal < d.MinSubtotal {
		return ErrDealMinSubtotal
	}
	return nil
}

func DealDiscount(d *entity.Deal, subtotal int64) int64 {
	var amount int64
	switch d.DiscountType {
	case entity.DiscountPercent:
		amount = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(d.DiscountValue)).
			Div(decimal.NewFromInt(100)).
			Round(0).IntPart()
		if d.MaxDiscount > 0 && amount > d.MaxDiscount {
			amount = d.MaxDiscount
		}
	case entity.DiscountFixed:
		amount = d.DiscountValue
	}
	return clamp(amount, subtotal)
}

// RedemptionDiscount values a redeemed reward against the cart. A free item
// reward is worth one unit of its menu item and needs that item in the cart.
func RedemptionDiscount(r *entity.PointsReward, items []entity.CartItem, subtotal int64) (int64, error) {
	switch r.RewardType {
	case entity.RewardFreeItem:
		if r.MenuItemID == nil {
			return 0, ErrRewardItemMissing
		}
		for i := range items {
			if items[i].MenuItemID == *r.MenuItemID {
				return clamp(items[i].MenuItem.Price, subtotal), nil
			}
		}
		return 0, ErrRewardItemMissing
	default:
		return clamp(r.DiscountAmount, subtotal), nil
	}
}

func clamp(amount, limit int64) int64 {
	if amount < 0 {
		return 0
	}
	if amount > limit {
		return limit
	}
	return amount
}
