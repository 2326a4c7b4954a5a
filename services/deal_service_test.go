package services

import (
	"testing"
	"time"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealCreateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.deals.Create(f.ctx, &DealIn{Code: "HALF", DiscountType: entity.DiscountPercent, DiscountValue: 150})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.deals.Create(f.ctx, &DealIn{Code: "ODD", DiscountType: "bogo", DiscountValue: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	start := time.Now()
	end := start.Add(-time.Hour)
	_, err = f.deals.Create(f.ctx, &DealIn{Code: "BACKWARDS", DiscountType: entity.DiscountFixed, DiscountValue: 100, StartsAt: &start, EndsAt: &end})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.deals.Create(f.ctx, &DealIn{Code: "dup", DiscountType: entity.DiscountFixed, DiscountValue: 100})
	require.NoError(t, err)
	_, err = f.deals.Create(f.ctx, &DealIn{Code: "DUP", DiscountType: entity.DiscountFixed, DiscountValue: 200})
	assert.ErrorIs(t, err, ErrDealCodeTaken)
}

func TestDealListActive(t *testing.T) {
	f := newFixture(t)
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	off := false

	_, err := f.deals.Create(f.ctx, &DealIn{Code: "LIVE", DiscountType: entity.DiscountFixed, DiscountValue: 100})
	require.NoError(t, err)
	_, err = f.deals.Create(f.ctx, &DealIn{Code: "PAUSED", DiscountType: entity.DiscountFixed, DiscountValue: 100, IsActive: &off})
	require.NoError(t, err)
	_, err = f.deals.Create(f.ctx, &DealIn{Code: "OVER", DiscountType: entity.DiscountFixed, DiscountValue: 100, EndsAt: &past})
	require.NoError(t, err)

	active, err := f.deals.ListActive(f.ctx, now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "LIVE", active[0].Code)

	all, err := f.deals.ListAll(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	f.addToCart(t, f.customer.ID, f.burger.ID, 1)
	_, err = f.checkout.Quote(f.ctx, f.customer.ID, "PAUSED", "")
	assert.ErrorIs(t, err, ErrDealInactive)
	_, err = f.checkout.Quote(f.ctx, f.customer.ID, "OVER", "")
	assert.ErrorIs(t, err, ErrDealExpired)
}

func TestDealMinimumSubtotal(t *testing.T) {
	f := newFixture(t)
	_, err := f.deals.Create(f.ctx, &DealIn{Code: "BIG", DiscountType: entity.DiscountFixed, DiscountValue: 500, MinSubtotal: 3000})
	require.NoError(t, err)

	f.addToCart(t, f.customer.ID, f.burger.ID, 1)
	_, err = f.checkout.Quote(f.ctx, f.customer.ID, "BIG", "")
	assert.ErrorIs(t, err, ErrDealMinSubtotal)

	f.addToCart(t, f.customer.ID, f.burger.ID, 1)
	q, err := f.checkout.Quote(f.ctx, f.customer.ID, "BIG", "")
	require.NoError(t, err)
	assert.Equal(t, int64(500), q.Discount)
}
