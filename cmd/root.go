package cmd

import (
	"fmt"
	"os"

	"github.com/gavvrail/MackDihh-sub000/configs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// global flags, they override the matching env keys
	envPort   string
	envSource string
)

var rootCmd = &cobra.Command{
	Use:   "mackdihh",
	Short: "MackDihh restaurant ordering backend",
	Long: `MackDihh serves the ordering API: menu, cart, checkout with promo codes
and loyalty points, order tracking, reviews, support chat and the admin back-office.

Configuration is read from .env and the environment (see DB_DRIVER, DB_SOURCE,
JWT_SECRET, TAX_RATE, DELIVERY_FEE, FREE_DELIVERY_THRESHOLD ...).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envPort, "port", "", "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&envSource, "db", "", "Database DSN or sqlite file (overrides DB_SOURCE)")
}

// bootstrap loads config, logger and database for every subcommand.
func bootstrap() (*configs.Config, *zap.Logger, *gorm.DB, error) {
	cfg := configs.LoadConfig()
	if envPort != "" {
		cfg.Port = envPort
	}
	if envSource != "" {
		cfg.DBSource = envSource
	}

	log, err := configs.NewLogger(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}

	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, log, db, nil
}
