package app

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/Flarenzy/subnetsplit/internal/auth"
	"github.com/Flarenzy/subnetsplit/internal/domain"
)

const (
	DefaultInputFile  = "ips-v4.txt"
	DefaultOutputFile = "output_cidrs.txt"
	DefaultPort       = "4040"
	DefaultMaxSubnets = 1 << 16
)

type Config struct {
	InputFile  string
	OutputFile string
	TargetBits uint8
	NoWait     bool
	LogLevel   slog.Level

	Port         string
	MaxSubnets   uint64
	DSN          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Auth         auth.Config
}

// LoadConfig reads the environment. Unset or unparseable values keep their
// defaults; flags are applied on top by the command tree.
func LoadConfig() Config {
	cfg := Config{
		InputFile:    envOr("SUBNETSPLIT_INPUT", DefaultInputFile),
		OutputFile:   envOr("SUBNETSPLIT_OUTPUT", DefaultOutputFile),
		TargetBits:   domain.DefaultTargetBits,
		NoWait:       envBool("SUBNETSPLIT_NO_WAIT"),
		LogLevel:     slog.LevelInfo,
		Port:         envOr("PORT", DefaultPort),
		MaxSubnets:   DefaultMaxSubnets,
		DSN:          os.Getenv("DB_CONN"),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		Auth: auth.Config{
			Enabled:       envBool("AUTH_ENABLED"),
			Issuer:        os.Getenv("AUTH_ISSUER"),
			JWKSURL:       os.Getenv("AUTH_JWKS_URL"),
			Audience:      os.Getenv("AUTH_AUDIENCE"),
			RequiredScope: os.Getenv("AUTH_REQUIRED_SCOPE"),
		},
	}

	if v := os.Getenv("SUBNETSPLIT_MAX_SUBNETS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.MaxSubnets = n
		}
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(lvl)); err == nil {
			cfg.LogLevel = level
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
