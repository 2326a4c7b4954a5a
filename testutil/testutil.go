// Package testutil builds throwaway databases and fixtures for tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/gavvrail/MackDihh-sub000/configs"
	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const Password = "secret123"

// NewDB opens a private in-memory sqlite database with the schema migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection keeps the in-memory database alive and serialises writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Config is the default configuration with a fixed JWT secret.
func Config() *configs.Config {
	return &configs.Config{
		AppEnv:                "test",
		Port:                  "0",
		DBDriver:              "sqlite",
		JWTSecret:             "test-secret",
		JWTTTL:                time.Hour,
		LogLevel:              "error",
		CORSOrigins:           []string{"*"},
		TaxRate:               decimal.NewFromFloat(0.06),
		DeliveryFee:           500,
		FreeDeliveryThreshold: 5000,
		PointsPerRinggit:      1,
		MailFrom:              "test@mackdihh.local",
	}
}

func CreateUser(t testing.TB, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Test",
		LastName:  "User",
		Address:   "1 Jalan Test, Kuala Lumpur",
		Role:      role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) *entity.MenuCategory {
	t.Helper()
	cat := &entity.MenuCategory{Name: name}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return cat
}

func CreateMenuItem(t testing.TB, db *gorm.DB, categoryID uint, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Price: price, IsAvailable: true, MenuCategoryID: categoryID}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return m
}

// AddCartRow inserts a raw cart row, duplicates included.
func AddCartRow(t testing.TB, db *gorm.DB, userID, menuItemID uint, qty int) *entity.CartItem {
	t.Helper()
	cart := entity.Cart{UserID: userID}
	if err := db.Where(entity.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
		t.Fatalf("cart: %v", err)
	}
	it := &entity.CartItem{CartID: cart.ID, MenuItemID: menuItemID, Quantity: qty}
	if err := db.Create(it).Error; err != nil {
		t.Fatalf("cart item: %v", err)
	}
	return it
}

// GivePoints sets a balance together with a matching ledger row.
func GivePoints(t testing.TB, db *gorm.DB, userID uint, points int64) {
	t.Helper()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.User{}).Where("id = ?", userID).
			Update("points_balance", gorm.Expr("points_balance + ?", points)).Error; err != nil {
			return err
		}
		var u entity.User
		if err := tx.First(&u, userID).Error; err != nil {
			return err
		}
		return tx.Create(&entity.UserPointsTransaction{
			UserID:       userID,
			Type:         entity.PointsAdjust,
			Points:       points,
			BalanceAfter: u.PointsBalance,
			Description:  "test grant",
		}).Error
	})
	if err != nil {
		t.Fatalf("give points: %v", err)
	}
}

// SetOrderStatus forces an order into a status, bypassing the transition rules.
func SetOrderStatus(t testing.TB, db *gorm.DB, orderID uint, status entity.OrderStatus) {
	t.Helper()
	if err := db.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", status).Error; err != nil {
		t.Fatalf("set status: %v", err)
	}
}
