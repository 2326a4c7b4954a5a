package services

import (
	"sort"

	"github.com/gavvrail/MackDihh-sub000/entity"
)

// ConsolidationPlan describes how to collapse duplicate cart rows.
type ConsolidationPlan struct {
	// row id -> new quantity for the row that survives
	Keep map[uint]int
	// rows whose quantity moved into a survivor
	Drop []uint
}

func (p ConsolidationPlan) Empty() bool {
	return len(p.Keep) == 0 && len(p.Drop) == 0
}

// PlanConsolidation groups items by menu item. For every group with more than
// one row the lowest id row keeps the summed quantity (capped at maxQty) and
// the others are dropped.
func PlanConsolidation(items []entity.CartItem, maxQty int) ConsolidationPlan {
	groups := make(map[uint][]entity.CartItem)
	for _, it := range items {
		groups[it.MenuItemID] = append(groups[it.MenuItemID], it)
	}

	plan := ConsolidationPlan{Keep: map[uint]int{}}
	for _, rows := range groups {
		if len(rows) < 2 {
			continue
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

		total := 0
		for _, r := range rows {
			total += r.Quantity
		}
		if maxQty > 0 && total > maxQty {
			total = maxQty
		}
		plan.Keep[rows[0].ID] = total
		for _, r := range rows[1:] {
			plan.Drop = append(plan.Drop, r.ID)
		}
	}
	sort.Slice(plan.Drop, func(i, j int) bool { return plan.Drop[i] < plan.Drop[j] })
	return plan
}

// Apply returns the items as they look after the plan, keeping id order.
func (p ConsolidationPlan) Apply(items []entity.CartItem) []entity.CartItem {
	dropped := make(map[uint]struct{}, len(p.Drop))
	for _, id := range p.Drop {
		dropped[id] = struct{}{}
	}
	out := make([]entity.CartItem, 0, len(items))
	for _, it := range items {
		if _, gone := dropped[it.ID]; gone {
			continue
		}
		if q, ok := p.Keep[it.ID]; ok {
			it.Quantity = q
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
