package services

import (
	"testing"
	"time"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	p := testPricing()

	tests := []struct {
		name     string
		subtotal int64
		discount int64
		want     Totals
	}{
		{
			name:     "below free delivery threshold",
			subtotal: 3180,
			want:     Totals{Subtotal: 3180, Tax: 191, DeliveryFee: 500, Total: 3871},
		},
		{
			name:     "at threshold delivery is free",
			subtotal: 5000,
			want:     Totals{Subtotal: 5000, Tax: 300, Total: 5300},
		},
		{
			name:     "tax on discounted amount, fee on gross subtotal",
			subtotal: 6000,
			discount: 600,
			want:     Totals{Subtotal: 6000, Discount: 600, Tax: 324, Total: 5724},
		},
		{
			name:     "discount larger than subtotal is clamped",
			subtotal: 1000,
			discount: 2000,
			want:     Totals{Subtotal: 1000, Discount: 1000, DeliveryFee: 500, Total: 500},
		},
		{
			name:     "negative discount ignored",
			subtotal: 1000,
			discount: -50,
			want:     Totals{Subtotal: 1000, Tax: 60, DeliveryFee: 500, Total: 1560},
		},
		{
			name: "empty cart costs nothing",
			want: Totals{},
		},
		{
			name:     "half sen rounds up",
			subtotal: 25,
			want:     Totals{Subtotal: 25, Tax: 2, DeliveryFee: 500, Total: 527},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Compute(tt.subtotal, tt.discount)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Subtotal-got.Discount+got.Tax+got.DeliveryFee, got.Total)
		})
	}
}

func TestSubtotal(t *testing.T) {
	items := []entity.CartItem{
		{Quantity: 2, MenuItem: entity.MenuItem{Price: 1590}},
		{Quantity: 1, MenuItem: entity.MenuItem{Price: 650}},
	}
	assert.Equal(t, int64(3830), Subtotal(items))
	assert.Zero(t, Subtotal(nil))
}

func TestDealDiscount(t *testing.T) {
	tests := []struct {
		name     string
		deal     entity.Deal
		subtotal int64
		want     int64
	}{
		{"percent", entity.Deal{DiscountType: entity.DiscountPercent, DiscountValue: 10}, 3180, 318},
		{"percent rounds half up", entity.Deal{DiscountType: entity.DiscountPercent, DiscountValue: 15}, 1590, 239},
		{"percent capped", entity.Deal{DiscountType: entity.DiscountPercent, DiscountValue: 50, MaxDiscount: 1000}, 6000, 1000},
		{"fixed", entity.Deal{DiscountType: entity.DiscountFixed, DiscountValue: 500}, 3180, 500},
		{"fixed never exceeds subtotal", entity.Deal{DiscountType: entity.DiscountFixed, DiscountValue: 5000}, 3180, 3180},
		{"unknown type", entity.Deal{DiscountType: "bogus", DiscountValue: 500}, 3180, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DealDiscount(&tt.deal, tt.subtotal))
		})
	}
}

func TestCheckDeal(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		deal entity.Deal
		sub  int64
		want error
	}{
		{"valid", entity.Deal{IsActive: true}, 100, nil},
		{"inactive", entity.Deal{IsActive: false}, 100, ErrDealInactive},
		{"not started", entity.Deal{IsActive: true, StartsAt: &future}, 100, ErrDealExpired},
		{"ended", entity.Deal{IsActive: true, EndsAt: &past}, 100, ErrDealExpired},
		{"inside window", entity.Deal{IsActive: true, StartsAt: &past, EndsAt: &future}, 100, nil},
		{"limit reached", entity.Deal{IsActive: true, UsageLimit: 3, UsedCount: 3}, 100, ErrDealExhausted},
		{"unlimited", entity.Deal{IsActive: true, UsedCount: 1000}, 100, nil},
		{"below minimum", entity.Deal{IsActive: true, MinSubtotal: 2000}, 1999, ErrDealMinSubtotal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDeal(&tt.deal, tt.sub, now)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRedemptionDiscount(t *testing.T) {
	friesID := uint(7)
	items := []entity.CartItem{
		{MenuItemID: 3, Quantity: 1, MenuItem: entity.MenuItem{Price: 1590}},
		{MenuItemID: friesID, Quantity: 2, MenuItem: entity.MenuItem{Price: 650}},
	}
	sub := Subtotal(items)

	t.Run("discount reward", func(t *testing.T) {
		got, err := RedemptionDiscount(&entity.PointsReward{RewardType: entity.RewardDiscount, DiscountAmount: 500}, items, sub)
		require.NoError(t, err)
		assert.Equal(t, int64(500), got)
	})

	t.Run("free item worth one unit", func(t *testing.T) {
		got, err := RedemptionDiscount(&entity.PointsReward{RewardType: entity.RewardFreeItem, MenuItemID: &friesID}, items, sub)
		require.NoError(t, err)
		assert.Equal(t, int64(650), got)
	})

	t.Run("free item not in cart", func(t *testing.T) {
		other := uint(99)
		_, err := RedemptionDiscount(&entity.PointsReward{RewardType: entity.RewardFreeItem, MenuItemID: &other}, items, sub)
		assert.ErrorIs(t, err, ErrRewardItemMissing)
	})

	t.Run("discount capped at subtotal", func(t *testing.T) {
		got, err := RedemptionDiscount(&entity.PointsReward{RewardType: entity.RewardDiscount, DiscountAmount: 100000}, items, sub)
		require.NoError(t, err)
		assert.Equal(t, sub, got)
	})
}
