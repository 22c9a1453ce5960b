package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"dog-profiles/internal/platform/logger"
	"dog-profiles/internal/ports/rows"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "8080"
	DefaultCacheTTL      = 30 * time.Second
	DefaultSheetsTimeout = 10 * time.Second
	DefaultAppName       = "dog-profiles"
)

type Config struct {
	Port string

	SpreadsheetID string
	CacheTTL      time.Duration

	// JSON completo de la service account. Puede venir vacío: se valida recién en el primer fetch.
	ServiceKeyJSON string
	SheetsTimeout  time.Duration

	Log LogConfig
}

type LogConfig struct {
	Level  logger.Level
	Format logger.Format
	App    string
}

// Load lee .env (si existe) y luego el entorno del proceso.
// Un error devuelto envuelve rows.ErrConfig y debe abortar el arranque.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse(os.Getenv)
}

// Parse arma la Config desde una función tipo os.Getenv.
func Parse(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:           get("PORT", DefaultPort),
		SpreadsheetID:  get("SPREADSHEET_ID", ""),
		ServiceKeyJSON: getenv("GOOGLE_SERVICE_KEY"),
		Log: LogConfig{
			Level:  logger.ParseLevel(getenv("LOG_LEVEL")),
			Format: logger.ParseFormat(getenv("LOG_FORMAT")),
			App:    get("APP_NAME", DefaultAppName),
		},
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: missing SPREADSHEET_ID environment variable", rows.ErrConfig)
	}

	ttl, err := seconds(getenv("CACHE_TTL_SECONDS"), DefaultCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: CACHE_TTL_SECONDS: %v", rows.ErrConfig, err)
	}
	cfg.CacheTTL = ttl

	timeout, err := seconds(getenv("SHEETS_TIMEOUT_SECONDS"), DefaultSheetsTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: SHEETS_TIMEOUT_SECONDS: %v", rows.ErrConfig, err)
	}
	if timeout == 0 {
		timeout = DefaultSheetsTimeout
	}
	cfg.SheetsTimeout = timeout

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// seconds parsea un entero no negativo de segundos; vacío => def.
func seconds(raw string, def time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("must be an integer number of seconds, got %q", raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative, got %d", n)
	}
	return time.Duration(n) * time.Second, nil
}
