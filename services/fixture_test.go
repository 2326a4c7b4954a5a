package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/pkg/mail"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"github.com/gavvrail/MackDihh-sub000/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

type fixture struct {
	db  *gorm.DB
	ctx context.Context

	cart     *CartService
	deals    *DealService
	rewards  *RewardService
	points   *PointsService
	checkout *CheckoutService
	orders   *OrderService
	reviews  *ReviewService
	chat     *ChatService
	wishlist *WishListService
	menu     *MenuService
	mailer   *recordingMailer

	customer *entity.User
	admin    *entity.User
	category *entity.MenuCategory
	burger   *entity.MenuItem
	fries    *entity.MenuItem
}

func testPricing() Pricing {
	return Pricing{
		TaxRate:               decimal.NewFromFloat(0.06),
		DeliveryFee:           500,
		FreeDeliveryThreshold: 5000,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	log := zap.NewNop()

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dealRepo := repository.NewDealRepository(db)

	f := &fixture{db: db, ctx: context.Background(), mailer: &recordingMailer{}}
	f.menu = NewMenuService(db, menuRepo)
	f.cart = NewCartService(db, cartRepo, menuRepo)
	f.points = NewPointsService(db, userRepo, repository.NewPointsRepository(db))
	f.deals = NewDealService(db, dealRepo)
	f.rewards = NewRewardService(db, repository.NewRewardRepository(db), menuRepo, f.points)
	f.checkout = NewCheckoutService(db, f.cart, f.deals, f.rewards, orderRepo, dealRepo, userRepo, testPricing(), f.mailer, log)
	f.orders = NewOrderService(db, orderRepo, dealRepo, f.points, 1, log)
	f.reviews = NewReviewService(db, repository.NewReviewRepository(db), orderRepo, menuRepo)
	f.chat = NewChatService(db, repository.NewChatRepository(db))
	f.wishlist = NewWishListService(db, repository.NewWishListRepository(db), menuRepo, f.cart)

	f.customer = testutil.CreateUser(t, db, "customer@example.com", entity.RoleCustomer)
	f.admin = testutil.CreateUser(t, db, "admin@example.com", entity.RoleAdmin)
	f.category = testutil.CreateCategory(t, db, "Burgers")
	f.burger = testutil.CreateMenuItem(t, db, f.category.ID, "Big Mack", 1590)
	f.fries = testutil.CreateMenuItem(t, db, f.category.ID, "Fries", 650)
	return f
}

func (f *fixture) addToCart(t *testing.T, userID, menuItemID uint, qty int) {
	t.Helper()
	_, err := f.cart.Add(f.ctx, userID, &AddToCartIn{MenuItemID: menuItemID, Qty: qty})
	require.NoError(t, err)
}

// placeOrder checks out the customer's cart after filling it with qty burgers.
func (f *fixture) placeOrder(t *testing.T, qty int, in *CheckoutIn) *entity.Order {
	t.Helper()
	f.addToCart(t, f.customer.ID, f.burger.ID, qty)
	if in == nil {
		in = &CheckoutIn{}
	}
	o, err := f.checkout.PlaceOrder(f.ctx, f.customer.ID, in)
	require.NoError(t, err)
	return o
}

// advance walks the order along the delivery chain up to status.
func (f *fixture) advance(t *testing.T, orderID uint, to entity.OrderStatus) {
	t.Helper()
	o, err := f.orders.Detail(f.ctx, orderID)
	require.NoError(t, err)
	for step := o.Status.Step() + 1; step <= to.Step(); step++ {
		_, err := f.orders.UpdateStatus(f.ctx, orderID, entity.OrderFlow[step])
		require.NoError(t, err)
	}
}

func (f *fixture) balance(t *testing.T, userID uint) int64 {
	t.Helper()
	b, err := f.points.Balance(f.ctx, userID)
	require.NoError(t, err)
	return b
}

func (f *fixture) ledgerSum(t *testing.T, userID uint) int64 {
	t.Helper()
	s, err := f.points.LedgerSum(f.ctx, userID)
	require.NoError(t, err)
	return s
}

var errMailDown = errors.New("smtp unavailable")
