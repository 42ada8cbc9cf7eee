package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the server binary needs from its environment.
type Config struct {
	DatabaseURL string
	Port        int
	LogLevel    string
	LogFormat   string

	// VerifyTotals enables strict mode: booking submissions are recomputed
	// from the catalog price and rejected when the client total disagrees.
	// Off by default; the submission contract accepts the client total verbatim.
	VerifyTotals bool
}

// FromEnv builds a Config from the process environment. A .env file in the
// working directory is read first when present; real environment variables
// win over file entries.
func FromEnv() (cfg Config, err error) {
	_ = godotenv.Load()

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.LogFormat = getenvDefault("LOG_FORMAT", "text")

	port := getenvDefault("PORT", "3000")
	cfg.Port, err = strconv.Atoi(port)
	if err != nil {
		return cfg, fmt.Errorf("invalid PORT %q: %w", port, err)
	}

	verify := getenvDefault("VERIFY_TOTALS", "false")
	cfg.VerifyTotals, err = strconv.ParseBool(verify)
	if err != nil {
		return cfg, fmt.Errorf("invalid VERIFY_TOTALS %q: %w", verify, err)
	}
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
