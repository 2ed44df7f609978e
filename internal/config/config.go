// Package config loads curator settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/curatedcellar/curator/internal/catalog"
)

// EnvPrefix prefixes environment variables, e.g. CURATOR_ADDR.
const EnvPrefix = "CURATOR"

// Config holds the runtime settings of the server.
type Config struct {
	DBPath   string
	Addr     string
	LogPath  string
	LogLevel slog.Level
	// PriceMax is the default upper bound of the price filter.
	PriceMax float64
}

// Defaults.
const (
	DefaultDBPath = "curator.sqlite3"
	DefaultAddr   = ":8080"
)

// Flags registers the server flags on flags.
func Flags(flags *pflag.FlagSet) {
	flags.StringP("db", "d", DefaultDBPath, "SQLite catalog database path")
	flags.StringP("addr", "a", DefaultAddr, "listen address")
	flags.StringP("log", "l", "", "log file path (default: stdout/stderr only)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Float64("price-max", catalog.DefaultPriceMax, "default price filter ceiling")
	flags.StringP("config", "c", "", "config file (yaml, toml or json)")
}

// Load resolves the configuration for parsed flags. Precedence is flag,
// then environment (after loading envFile if present), then config file,
// then defaults.
func Load(flags *pflag.FlagSet, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db", DefaultDBPath)
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("log", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("price_max", catalog.DefaultPriceMax)

	bindings := map[string]string{
		"db":        "db",
		"addr":      "addr",
		"log":       "log",
		"log_level": "log-level",
		"price_max": "price-max",
	}
	for key, flag := range bindings {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("binding flag %s: %w", flag, err)
			}
		}
	}

	if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		DBPath:   v.GetString("db"),
		Addr:     v.GetString("addr"),
		LogPath:  v.GetString("log"),
		PriceMax: v.GetFloat64("price_max"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return Config{}, fmt.Errorf("parsing log level: %w", err)
	}

	if cfg.DBPath == "" {
		return Config{}, errors.New("database path must not be empty")
	}
	if cfg.PriceMax <= 0 {
		return Config{}, fmt.Errorf("price ceiling must be positive, got %v", cfg.PriceMax)
	}

	return cfg, nil
}
