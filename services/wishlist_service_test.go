package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishListAddIsIdempotent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.wishlist.Add(f.ctx, f.customer.ID, f.burger.ID))
	require.NoError(t, f.wishlist.Add(f.ctx, f.customer.ID, f.burger.ID))

	list, err := f.wishlist.List(f.ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Big Mack", list[0].MenuItem.Name)

	assert.ErrorIs(t, f.wishlist.Add(f.ctx, f.customer.ID, 9999), ErrMenuItemNotFound)
}

func TestWishListRemove(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wishlist.Add(f.ctx, f.customer.ID, f.fries.ID))

	require.NoError(t, f.wishlist.Remove(f.ctx, f.customer.ID, f.fries.ID))
	assert.ErrorIs(t, f.wishlist.Remove(f.ctx, f.customer.ID, f.fries.ID), ErrWishListNotFound)
}

func TestWishListMoveToCart(t *testing.T) {
	f := newFixture(t)
	f.addToCart(t, f.customer.ID, f.burger.ID, 2)
	require.NoError(t, f.wishlist.Add(f.ctx, f.customer.ID, f.burger.ID))

	line, err := f.wishlist.MoveToCart(f.ctx, f.customer.ID, f.burger.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)

	list, err := f.wishlist.List(f.ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.wishlist.MoveToCart(f.ctx, f.customer.ID, f.burger.ID)
	assert.ErrorIs(t, err, ErrWishListNotFound)
}

func TestWishListMoveUnavailableKeepsEntry(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wishlist.Add(f.ctx, f.customer.ID, f.fries.ID))
	require.NoError(t, f.menu.SetAvailability(f.ctx, f.fries.ID, false))

	_, err := f.wishlist.MoveToCart(f.ctx, f.customer.ID, f.fries.ID)
	assert.ErrorIs(t, err, ErrItemUnavailable)

	list, err := f.wishlist.List(f.ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1, "rolled back")
}
