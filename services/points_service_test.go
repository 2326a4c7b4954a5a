package services

import (
	"testing"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSpendInsufficientLeavesBalance(t *testing.T) {
	f := newFixture(t)
	testutil.GivePoints(t, f.db, f.customer.ID, 30)

	err := f.db.Transaction(func(tx *gorm.DB) error {
		_, err := f.points.Spend(tx, f.customer.ID, 31, "too much", nil)
		return err
	})
	assert.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Equal(t, int64(30), f.balance(t, f.customer.ID))
	assert.Equal(t, int64(30), f.ledgerSum(t, f.customer.ID))
}

func TestAdjust(t *testing.T) {
	f := newFixture(t)

	row, err := f.points.Adjust(f.ctx, f.customer.ID, 120, "goodwill")
	require.NoError(t, err)
	assert.Equal(t, entity.PointsAdjust, row.Type)
	assert.Equal(t, int64(120), row.BalanceAfter)

	row, err = f.points.Adjust(f.ctx, f.customer.ID, -20, "correction")
	require.NoError(t, err)
	assert.Equal(t, entity.PointsAdjust, row.Type, "deductions are adjustments, not redemptions")
	assert.Equal(t, int64(-20), row.Points)
	assert.Equal(t, int64(100), row.BalanceAfter)

	_, err = f.points.Adjust(f.ctx, f.customer.ID, -101, "overdraw")
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = f.points.Adjust(f.ctx, f.customer.ID, 10, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.points.Adjust(f.ctx, f.customer.ID, 0, "nothing")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.points.Adjust(f.ctx, 9999, 10, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.Equal(t, int64(100), f.balance(t, f.customer.ID))
	assert.Equal(t, int64(100), f.ledgerSum(t, f.customer.ID))

	history, total, err := f.points.History(f.ctx, f.customer.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(-20), history[0].Points, "newest first")
}
