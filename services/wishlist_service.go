package services

import (
	"context"
	"errors"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"gorm.io/gorm"
)

type WishListService struct {
	DB       *gorm.DB
	Repo     *repository.WishListRepository
	MenuRepo *repository.MenuRepository
	Cart     *CartService
}

func NewWishListService(db *gorm.DB, repo *repository.WishListRepository, mr *repository.MenuRepository, cart *CartService) *WishListService {
	return &WishListService{DB: db, Repo: repo, MenuRepo: mr, Cart: cart}
}

func (s *WishListService) List(ctx context.Context, userID uint) ([]entity.WishListItem, error) {
	return s.Repo.List(s.DB.WithContext(ctx), userID)
}

// Add is idempotent.
func (s *WishListService) Add(ctx context.Context, userID, menuItemID uint) error {
	db := s.DB.WithContext(ctx)
	if _, err := s.MenuRepo.FindItem(db, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	return s.Repo.Add(db, userID, menuItemID)
}

func (s *WishListService) Remove(ctx context.Context, userID, menuItemID uint) error {
	n, err := s.Repo.Remove(s.DB.WithContext(ctx), userID, menuItemID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWishListNotFound
	}
	return nil
}

// MoveToCart adds one of the item to the cart and drops it from the wish list.
func (s *WishListService) MoveToCart(ctx context.Context, userID, menuItemID uint) (*entity.CartItem, error) {
	var line *entity.CartItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.Repo.Remove(tx, userID, menuItemID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrWishListNotFound
		}
		line, err = s.Cart.addInTx(tx, userID, menuItemID, 1, "")
		return err
	})
	return line, err
}
