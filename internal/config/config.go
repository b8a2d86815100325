package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/randomtoy/kinun-go/internal/line"
)

// LineConfig holds the LINE official account settings.
type LineConfig struct {
	AccountID string `mapstructure:"account_id"`
}

// FormConfig bounds the year select.
type FormConfig struct {
	YearMin int `mapstructure:"year_min"`
	YearMax int `mapstructure:"year_max"`
}

// FeaturesConfig toggles the optional share helpers.
type FeaturesConfig struct {
	QR        bool `mapstructure:"qr"`
	Clipboard bool `mapstructure:"clipboard"`
}

// Config holds all runtime configuration.
// Values are populated from .kinun.yaml, KINUN_* env vars, and CLI flags.
type Config struct {
	HTTPAddr        string         `mapstructure:"http_addr"`
	LogLevelName    string         `mapstructure:"log_level"`
	ShutdownTimeout time.Duration  `mapstructure:"shutdown_timeout"`
	Line            LineConfig     `mapstructure:"line"`
	Form            FormConfig     `mapstructure:"form"`
	Features        FeaturesConfig `mapstructure:"features"`

	LogLevel slog.Level `mapstructure:"-"`
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("line.account_id", line.DefaultAccountID)
	v.SetDefault("form.year_min", 1950)
	v.SetDefault("form.year_max", 2010)
	v.SetDefault("features.qr", true)
	v.SetDefault("features.clipboard", true)
}

// Load reads configuration from v, applying defaults for any values not
// set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	level, err := parseLogLevel(c.LogLevelName)
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// New returns a viper instance reading KINUN_* env vars, e.g.
// KINUN_LINE_ACCOUNT_ID for line.account_id.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("KINUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func (c Config) validate() error {
	var errs []error
	if strings.TrimSpace(c.Line.AccountID) == "" {
		errs = append(errs, errors.New("line.account_id is required"))
	}
	if c.Form.YearMin > c.Form.YearMax {
		errs = append(errs, fmt.Errorf("form.year_min (%d) is after form.year_max (%d)", c.Form.YearMin, c.Form.YearMax))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q", s)
	}
}
