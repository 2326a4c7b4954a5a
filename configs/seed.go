package configs

import (
	"fmt"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config, log *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("admin already exists", zap.String("email", cfg.AdminEmail))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

type seedItem struct {
	Name  string
	Desc  string
	Price int64
}

var seedMenu = []struct {
	Category string
	Items    []seedItem
}{
	{"Burgers", []seedItem{
		{"Big Mack", "Double beef patty, cheese, special sauce", 1590},
		{"Spicy Chicken Burger", "Crispy thigh fillet with sambal mayo", 1290},
		{"Fish Fillet", "Hoki fillet with tartar sauce", 1090},
	}},
	{"Sides", []seedItem{
		{"Fries", "Large fries", 650},
		{"Nuggets (6pc)", "Chicken nuggets with two dips", 890},
	}},
	{"Drinks", []seedItem{
		{"Iced Milo", "Large", 550},
		{"Teh Tarik", "Hot pulled milk tea", 450},
	}},
}

// SeedCatalog fills the menu, rewards and a sample deal. Rows that already
// exist by name or code are left alone.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i, group := range seedMenu {
			cat := entity.MenuCategory{Name: group.Category}
			if err := tx.Where(entity.MenuCategory{Name: group.Category}).
				Attrs(entity.MenuCategory{SortOrder: i}).
				FirstOrCreate(&cat).Error; err != nil {
				return err
			}
			for _, it := range group.Items {
				item := entity.MenuItem{}
				if err := tx.Where(entity.MenuItem{Name: it.Name, MenuCategoryID: cat.ID}).
					Attrs(entity.MenuItem{Description: it.Desc, Price: it.Price, IsAvailable: true}).
					FirstOrCreate(&item).Error; err != nil {
					return err
				}
			}
		}

		var fries entity.MenuItem
		if err := tx.Where("name = ?", "Fries").First(&fries).Error; err != nil {
			return err
		}
		rewards := []entity.PointsReward{
			{Name: "RM5 off", Description: "RM5 off your next order", PointsCost: 50, RewardType: entity.RewardDiscount, DiscountAmount: 500, IsActive: true},
			{Name: "Free Fries", Description: "One large fries on us", PointsCost: 60, RewardType: entity.RewardFreeItem, MenuItemID: &fries.ID, IsActive: true},
		}
		for _, rw := range rewards {
			row := entity.PointsReward{}
			if err := tx.Where(entity.PointsReward{Name: rw.Name}).Attrs(rw).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}

		deal := entity.Deal{}
		return tx.Where(entity.Deal{Code: "WELCOME10"}).
			Attrs(entity.Deal{
				Description:   "10% off, up to RM10",
				DiscountType:  entity.DiscountPercent,
				DiscountValue: 10,
				MaxDiscount:   1000,
				IsActive:      true,
			}).
			FirstOrCreate(&deal).Error
	})
}
