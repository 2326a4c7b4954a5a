package services

import (
	"regexp"
	"testing"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redemptionCode = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestRedeem(t *testing.T) {
	f := newFixture(t)
	reward, err := f.rewards.Create(f.ctx, &RewardIn{Name: "Free Fries", PointsCost: 60, RewardType: entity.RewardFreeItem, MenuItemID: &f.fries.ID})
	require.NoError(t, err)

	_, err = f.rewards.Redeem(f.ctx, f.customer.ID, reward.ID)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	var count int64
	require.NoError(t, f.db.Model(&entity.UserRedemption{}).Count(&count).Error)
	assert.Zero(t, count, "failed redemption leaves no code behind")

	testutil.GivePoints(t, f.db, f.customer.ID, 130)
	a, err := f.rewards.Redeem(f.ctx, f.customer.ID, reward.ID)
	require.NoError(t, err)
	b, err := f.rewards.Redeem(f.ctx, f.customer.ID, reward.ID)
	require.NoError(t, err)

	assert.Regexp(t, redemptionCode, a.Code)
	assert.NotEqual(t, a.Code, b.Code)
	assert.Equal(t, int64(60), a.PointsSpent)
	assert.Equal(t, int64(10), f.balance(t, f.customer.ID))
	assert.Equal(t, int64(10), f.ledgerSum(t, f.customer.ID))

	mine, err := f.rewards.ListForUser(f.ctx, f.customer.ID, true)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestRedeemInactiveReward(t *testing.T) {
	f := newFixture(t)
	off := false
	reward, err := f.rewards.Create(f.ctx, &RewardIn{Name: "Retired", PointsCost: 10, RewardType: entity.RewardDiscount, DiscountAmount: 100, IsActive: &off})
	require.NoError(t, err)
	assert.False(t, reward.IsActive)
	testutil.GivePoints(t, f.db, f.customer.ID, 100)

	_, err = f.rewards.Redeem(f.ctx, f.customer.ID, reward.ID)
	assert.ErrorIs(t, err, ErrRewardInactive)

	active, err := f.rewards.ListActive(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestRewardValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.rewards.Create(f.ctx, &RewardIn{Name: "No amount", PointsCost: 10, RewardType: entity.RewardDiscount})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.rewards.Create(f.ctx, &RewardIn{Name: "No item", PointsCost: 10, RewardType: entity.RewardFreeItem})
	assert.ErrorIs(t, err, ErrInvalidInput)

	missing := uint(9999)
	_, err = f.rewards.Create(f.ctx, &RewardIn{Name: "Ghost item", PointsCost: 10, RewardType: entity.RewardFreeItem, MenuItemID: &missing})
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	assert.ErrorIs(t, f.rewards.Delete(f.ctx, 9999), ErrRewardNotFound)
}

func TestFreeItemRedemptionNeedsItemInCart(t *testing.T) {
	f := newFixture(t)
	reward, err := f.rewards.Create(f.ctx, &RewardIn{Name: "Free Fries", PointsCost: 60, RewardType: entity.RewardFreeItem, MenuItemID: &f.fries.ID})
	require.NoError(t, err)
	testutil.GivePoints(t, f.db, f.customer.ID, 60)
	red, err := f.rewards.Redeem(f.ctx, f.customer.ID, reward.ID)
	require.NoError(t, err)

	f.addToCart(t, f.customer.ID, f.burger.ID, 1)
	_, err = f.checkout.Quote(f.ctx, f.customer.ID, "", red.Code)
	assert.ErrorIs(t, err, ErrRewardItemMissing)

	f.addToCart(t, f.customer.ID, f.fries.ID, 2)
	q, err := f.checkout.Quote(f.ctx, f.customer.ID, "", red.Code)
	require.NoError(t, err)
	assert.Equal(t, int64(650), q.Discount)

	other := testutil.CreateUser(t, f.db, "other@example.com", entity.RoleCustomer)
	f.addToCart(t, other.ID, f.fries.ID, 1)
	_, err = f.checkout.Quote(f.ctx, other.ID, "", red.Code)
	assert.ErrorIs(t, err, ErrRedemptionNotFound, "codes belong to their owner")
}
