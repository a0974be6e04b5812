package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Location returns the operating region's timezone. Billing day windows
// and cron triggers both run in it.
func Location() *time.Location {
	name := GetEnv("APP_TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid APP_TIMEZONE %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// BillingEpochYear anchors the three-year invoice cycle.
func BillingEpochYear() int {
	return GetIntEnv("BILLING_EPOCH_YEAR", 2025)
}

// Cron specs for the recurring billing jobs.
func DailyDuesCronSpec() string {
	return GetEnv("BILLING_DUES_CRON", "0 1 * * *")
}

func AnnualInvoiceCronSpec() string {
	return GetEnv("BILLING_INVOICE_CRON", "0 2 1 1 *")
}
