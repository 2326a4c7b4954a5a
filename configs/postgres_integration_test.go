//go:build integration
// +build integration

package configs_test

import (
	"context"
	"testing"
	"time"

	"github.com/gavvrail/MackDihh-sub000/configs"
	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/pkg/mail"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := testutil.Config()
	cfg.DBDriver = "postgres"
	cfg.DBSource = dsn
	db, err := configs.ConnectionDB(cfg)
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func TestPostgresSeedIsIdempotent(t *testing.T) {
	db := setupPostgres(t)

	require.NoError(t, configs.SeedCatalog(db))
	require.NoError(t, configs.SeedCatalog(db))

	var items, deals int64
	require.NoError(t, db.Model(&entity.MenuItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&entity.Deal{}).Count(&deals).Error)
	assert.Equal(t, int64(7), items)
	assert.Equal(t, int64(1), deals)

	cfg := testutil.Config()
	cfg.AdminEmail = "admin@mackdihh.test"
	cfg.AdminPassword = "change-me"
	require.NoError(t, configs.SeedAdmin(db, cfg, zap.NewNop()))
	require.NoError(t, configs.SeedAdmin(db, cfg, zap.NewNop()))

	var admins int64
	require.NoError(t, db.Model(&entity.User{}).Where("role = ?", entity.RoleAdmin).Count(&admins).Error)
	assert.Equal(t, int64(1), admins)
}

func TestPostgresDuplicateKeysAreTranslated(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	deals := services.NewDealService(db, repository.NewDealRepository(db))

	_, err := deals.Create(ctx, &services.DealIn{Code: "flat5", DiscountType: entity.DiscountFixed, DiscountValue: 500})
	require.NoError(t, err)

	_, err = deals.Create(ctx, &services.DealIn{Code: "FLAT5", DiscountType: entity.DiscountFixed, DiscountValue: 300})
	assert.ErrorIs(t, err, services.ErrDealCodeTaken)
}

func TestPostgresOrderEarnsPoints(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	log := zap.NewNop()

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dealRepo := repository.NewDealRepository(db)

	cart := services.NewCartService(db, repository.NewCartRepository(db), menuRepo)
	points := services.NewPointsService(db, userRepo, repository.NewPointsRepository(db))
	deals := services.NewDealService(db, dealRepo)
	rewards := services.NewRewardService(db, repository.NewRewardRepository(db), menuRepo, points)
	cfg := testutil.Config()
	checkout := services.NewCheckoutService(db, cart, deals, rewards, orderRepo, dealRepo, userRepo,
		services.Pricing{
			TaxRate:               cfg.TaxRate,
			DeliveryFee:           cfg.DeliveryFee,
			FreeDeliveryThreshold: cfg.FreeDeliveryThreshold,
		},
		mail.NewLogMailer(cfg.MailFrom, log),
		log,
	)
	orders := services.NewOrderService(db, orderRepo, dealRepo, points, cfg.PointsPerRinggit, log)

	user := testutil.CreateUser(t, db, "pg@example.com", entity.RoleCustomer)
	cat := testutil.CreateCategory(t, db, "Burgers")
	burger := testutil.CreateMenuItem(t, db, cat.ID, "Big Mack", 1590)

	testutil.AddCartRow(t, db, user.ID, burger.ID, 2)
	testutil.AddCartRow(t, db, user.ID, burger.ID, 2)

	o, err := checkout.PlaceOrder(ctx, user.ID, &services.CheckoutIn{})
	require.NoError(t, err)
	assert.Equal(t, int64(6360), o.Subtotal)
	assert.Equal(t, int64(6742), o.Total)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 4, o.Items[0].Quantity)

	for _, st := range entity.OrderFlow[1:] {
		_, err := orders.UpdateStatus(ctx, o.ID, st)
		require.NoError(t, err, "move to %s", st)
	}

	balance, err := points.Balance(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(67), balance)

	sum, err := points.LedgerSum(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, balance, sum)
}
