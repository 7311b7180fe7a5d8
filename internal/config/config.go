// Package config resolves the purge policy from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Purge carries the resolved purge settings.
type Purge struct {
	IntervalSeconds int `validate:"gte=1"`
	MaxEntries      int `validate:"gte=1"`
	Percent         int `validate:"gte=0,lte=100"`
	MetricsEnabled  bool
}

// Defaults returns the built-in purge policy.
func Defaults() Purge {
	return Purge{
		IntervalSeconds: 10,
		MaxEntries:      10000,
		Percent:         30,
	}
}

var validate = validator.New()

// Load reads from environment (optionally .env). Absent or malformed values
// fall back to defaults; an out-of-range combination reverts wholesale.
// Never fails.
func Load() Purge {
	_ = godotenv.Load()

	def := Defaults()
	cfg := Purge{
		IntervalSeconds: getInt("LOGGY_PURGE_INTERVAL_SECONDS", def.IntervalSeconds),
		MaxEntries:      getInt("LOGGY_PURGE_MAX_ENTRIES", def.MaxEntries),
		Percent:         getInt("LOGGY_PURGE_PERCENT", def.Percent),
		MetricsEnabled:  getBool("LOGGY_METRICS_ENABLED", false),
	}
	if err := validate.Struct(cfg); err != nil {
		return def
	}
	return cfg
}

func getInt(key string, def int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return i
}

func getBool(key string, def bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return parsed
}
