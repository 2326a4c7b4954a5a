package services

import (
	"testing"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deliveredBurger gives the customer a delivered order containing the burger.
func (f *fixture) deliveredBurger(t *testing.T) *entity.Order {
	t.Helper()
	o := f.placeOrder(t, 1, nil)
	f.advance(t, o.ID, entity.OrderDelivered)
	return o
}

func TestReviewNeedsDeliveredPurchase(t *testing.T) {
	f := newFixture(t)

	_, err := f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 5})
	assert.ErrorIs(t, err, ErrNotPurchased)

	o := f.placeOrder(t, 1, nil)
	f.advance(t, o.ID, entity.OrderDelivering)
	_, err = f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 5})
	assert.ErrorIs(t, err, ErrNotPurchased, "out for delivery is not enough")

	f.advance(t, o.ID, entity.OrderDelivered)
	rev, err := f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 5, Comment: " great "})
	require.NoError(t, err)
	assert.Equal(t, o.ID, rev.OrderID)
	assert.Equal(t, "great", rev.Comment)

	_, err = f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.fries.ID, Rating: 4})
	assert.ErrorIs(t, err, ErrNotPurchased, "fries were never ordered")
}

func TestReviewValidation(t *testing.T) {
	f := newFixture(t)
	f.deliveredBurger(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	_, err := f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: 9999, Rating: 3})
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	_, err = f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 3})
	require.NoError(t, err)
	_, err = f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 4})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestReviewUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	f.deliveredBurger(t)
	rev, err := f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 2})
	require.NoError(t, err)

	rating := 4
	updated, err := f.reviews.Update(f.ctx, f.customer.ID, rev.ID, &ReviewUpdateIn{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)

	other := testutil.CreateUser(t, f.db, "other@example.com", entity.RoleCustomer)
	_, err = f.reviews.Update(f.ctx, other.ID, rev.ID, &ReviewUpdateIn{Rating: &rating})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.reviews.Delete(f.ctx, other.ID, rev.ID, false), ErrForbidden)

	require.NoError(t, f.reviews.Delete(f.ctx, f.customer.ID, rev.ID, false))
	assert.ErrorIs(t, f.reviews.Delete(f.ctx, f.customer.ID, rev.ID, false), ErrReviewNotFound)

	// deleting frees the slot for a new review
	_, err = f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 5})
	require.NoError(t, err)
}

func TestReviewAggregate(t *testing.T) {
	f := newFixture(t)
	f.deliveredBurger(t)
	_, err := f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 5})
	require.NoError(t, err)

	other := testutil.CreateUser(t, f.db, "other@example.com", entity.RoleCustomer)
	f.addToCart(t, other.ID, f.burger.ID, 1)
	o, err := f.checkout.PlaceOrder(f.ctx, other.ID, &CheckoutIn{})
	require.NoError(t, err)
	f.advance(t, o.ID, entity.OrderDelivered)
	_, err = f.reviews.Create(f.ctx, other.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 2})
	require.NoError(t, err)

	list, err := f.reviews.ListForItem(f.ctx, f.burger.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, int64(2), list.Count)
	assert.InDelta(t, 3.5, list.Average, 0.001)

	detail, err := f.menu.GetItem(f.ctx, f.burger.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, detail.Average, 0.001)
}

func TestReviewVotes(t *testing.T) {
	f := newFixture(t)
	f.deliveredBurger(t)
	rev, err := f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 5})
	require.NoError(t, err)
	voter := testutil.CreateUser(t, f.db, "voter@example.com", entity.RoleCustomer)

	_, err = f.reviews.Vote(f.ctx, f.customer.ID, rev.ID, true)
	assert.ErrorIs(t, err, ErrOwnReview)

	got, err := f.reviews.Vote(f.ctx, voter.ID, rev.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, got.HelpfulCount)
	assert.Equal(t, 0, got.NotHelpfulCount)

	got, err = f.reviews.Vote(f.ctx, voter.ID, rev.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, got.HelpfulCount, "repeat vote is a no-op")

	got, err = f.reviews.Vote(f.ctx, voter.ID, rev.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, got.HelpfulCount)
	assert.Equal(t, 1, got.NotHelpfulCount)

	_, err = f.reviews.Vote(f.ctx, voter.ID, 9999, true)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewResponse(t *testing.T) {
	f := newFixture(t)
	f.deliveredBurger(t)
	rev, err := f.reviews.Create(f.ctx, f.customer.ID, &ReviewIn{MenuItemID: f.burger.ID, Rating: 1})
	require.NoError(t, err)

	_, err = f.reviews.Respond(f.ctx, f.admin.ID, rev.ID, "  ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	first, err := f.reviews.Respond(f.ctx, f.admin.ID, rev.ID, "Sorry about that")
	require.NoError(t, err)
	second, err := f.reviews.Respond(f.ctx, f.admin.ID, rev.ID, "We fixed the grill")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "one response per review")

	require.NoError(t, f.reviews.DeleteResponse(f.ctx, rev.ID))
	assert.ErrorIs(t, f.reviews.DeleteResponse(f.ctx, rev.ID), ErrReviewNotFound)

	// an admin can remove any review
	require.NoError(t, f.reviews.Delete(f.ctx, f.admin.ID, rev.ID, true))
}
