package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv    string
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration
	LogLevel  string

	CORSOrigins []string

	// money values are in sen
	TaxRate               decimal.Decimal
	DeliveryFee           int64
	FreeDeliveryThreshold int64
	PointsPerRinggit      int64

	AdminEmail    string
	AdminPassword string
	MailFrom      string
}

// LoadConfig reads .env when present and falls back to process env and defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		Port:                  getEnv("PORT", "8000"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite"),
		DBSource:              getEnv("DB_SOURCE", "mackdihh.db"),
		JWTSecret:             getEnv("JWT_SECRET", "changeme"),
		JWTTTL:                getDuration("JWT_TTL", 24*time.Hour),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		CORSOrigins:           splitList(getEnv("CORS_ORIGINS", "*")),
		TaxRate:               getDecimal("TAX_RATE", decimal.NewFromFloat(0.06)),
		DeliveryFee:           getInt64("DELIVERY_FEE", 500),
		FreeDeliveryThreshold: getInt64("FREE_DELIVERY_THRESHOLD", 5000),
		PointsPerRinggit:      getInt64("POINTS_PER_RINGGIT", 1),
		AdminEmail:            getEnv("ADMIN_EMAIL", ""),
		AdminPassword:         getEnv("ADMIN_PASSWORD", ""),
		MailFrom:              getEnv("MAIL_FROM", "no-reply@mackdihh.local"),
	}
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
