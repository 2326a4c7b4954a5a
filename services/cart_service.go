package services

import (
	"context"
	"errors"
	"strings"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"gorm.io/gorm"
)

// MaxLineQty caps the quantity of a single cart line.
const MaxLineQty = 99

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Qty        int    `json:"qty" binding:"min=0"`
	Note       string `json:"note"`
}

type CartView struct {
	*entity.Cart
	Subtotal  int64 `json:"subtotal"`
	ItemCount int   `json:"itemCount"`
}

// Get loads the cart, merging duplicate lines for the same menu item first.
func (s *CartService) Get(ctx context.Context, userID uint) (*CartView, error) {
	c, err := s.loadConsolidated(s.DB.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return newCartView(c), nil
}

func (s *CartService) loadConsolidated(db *gorm.DB, userID uint) (*entity.Cart, error) {
	c, err := s.CartRepo.GetCartWithItems(db, userID)
	if err != nil {
		return nil, err
	}
	plan := PlanConsolidation(c.Items, MaxLineQty)
	if plan.Empty() {
		return c, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for id, qty := range plan.Keep {
			if err := s.CartRepo.SetQuantity(tx, id, qty); err != nil {
				return err
			}
		}
		return s.CartRepo.DeleteItems(tx, plan.Drop)
	})
	if err != nil {
		return nil, err
	}
	c.Items = plan.Apply(c.Items)
	return c, nil
}

func (s *CartService) Add(ctx context.Context, userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	var line *entity.CartItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		line, err = s.addInTx(tx, userID, in.MenuItemID, in.Qty, in.Note)
		return err
	})
	return line, err
}

// addInTx increments an existing line for the item or creates one.
func (s *CartService) addInTx(tx *gorm.DB, userID, menuItemID uint, qty int, note string) (*entity.CartItem, error) {
	if qty <= 0 {
		qty = 1
	}
	if qty > MaxLineQty {
		qty = MaxLineQty
	}

	m, err := s.MenuRepo.FindItem(tx, menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if !m.IsAvailable {
		return nil, ErrItemUnavailable
	}

	c, err := s.CartRepo.GetOrCreateCart(tx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.CartRepo.FindItem(tx, c.ID, m.ID)
	switch {
	case err == nil:
		newQty := existing.Quantity + qty
		if newQty > MaxLineQty {
			newQty = MaxLineQty
		}
		if err := s.CartRepo.SetQuantity(tx, existing.ID, newQty); err != nil {
			return nil, err
		}
		existing.Quantity = newQty
		existing.MenuItem = *m
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		line := &entity.CartItem{
			CartID:     c.ID,
			MenuItemID: m.ID,
			Quantity:   qty,
			Note:       strings.TrimSpace(note),
		}
		if err := s.CartRepo.CreateItem(tx, line); err != nil {
			return nil, err
		}
		line.MenuItem = *m
		return line, nil
	default:
		return nil, err
	}
}

// UpdateQty sets the line quantity; zero or less removes the line.
func (s *CartService) UpdateQty(ctx context.Context, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return s.RemoveItem(ctx, userID, itemID)
	}
	if qty > MaxLineQty {
		qty = MaxLineQty
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.CartRepo.UpdateQty(tx, userID, itemID, qty)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.CartRepo.RemoveItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}

func (s *CartService) Count(ctx context.Context, userID uint) (int64, error) {
	return s.CartRepo.Count(s.DB.WithContext(ctx), userID)
}

func newCartView(c *entity.Cart) *CartView {
	v := &CartView{Cart: c}
	for i := range c.Items {
		v.Subtotal += c.Items[i].LineTotal()
		v.ItemCount += c.Items[i].Quantity
	}
	return v
}
