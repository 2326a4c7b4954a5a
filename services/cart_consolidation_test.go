package services

import (
	"testing"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/stretchr/testify/assert"
)

func line(id, menuItemID uint, qty int) entity.CartItem {
	return entity.CartItem{ID: id, MenuItemID: menuItemID, Quantity: qty}
}

func TestPlanConsolidation(t *testing.T) {
	t.Run("no duplicates", func(t *testing.T) {
		plan := PlanConsolidation([]entity.CartItem{line(1, 10, 1), line(2, 11, 3)}, MaxLineQty)
		assert.True(t, plan.Empty())
	})

	t.Run("lowest id keeps the sum", func(t *testing.T) {
		items := []entity.CartItem{line(5, 10, 2), line(2, 10, 1), line(3, 11, 1), line(9, 10, 4)}
		plan := PlanConsolidation(items, MaxLineQty)

		assert.Equal(t, map[uint]int{2: 7}, plan.Keep)
		assert.Equal(t, []uint{5, 9}, plan.Drop)

		merged := plan.Apply(items)
		assert.Equal(t, []entity.CartItem{line(2, 10, 7), line(3, 11, 1)}, merged)
	})

	t.Run("sum is capped", func(t *testing.T) {
		plan := PlanConsolidation([]entity.CartItem{line(1, 10, 60), line(2, 10, 50)}, MaxLineQty)
		assert.Equal(t, MaxLineQty, plan.Keep[1])
		assert.Equal(t, []uint{2}, plan.Drop)
	})

	t.Run("several groups", func(t *testing.T) {
		items := []entity.CartItem{line(1, 10, 1), line(2, 11, 1), line(3, 10, 1), line(4, 11, 2)}
		plan := PlanConsolidation(items, MaxLineQty)
		assert.Equal(t, map[uint]int{1: 2, 2: 3}, plan.Keep)
		assert.Equal(t, []uint{3, 4}, plan.Drop)
	})
}
