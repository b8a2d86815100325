package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"HTTPAddr", cfg.HTTPAddr, ":8080"},
		{"LogLevel", cfg.LogLevel, slog.LevelInfo},
		{"ShutdownTimeout", cfg.ShutdownTimeout, 10 * time.Second},
		{"AccountID", cfg.Line.AccountID, "@042rsqoj"},
		{"YearMin", cfg.Form.YearMin, 1950},
		{"YearMax", cfg.Form.YearMax, 2010},
		{"QR", cfg.Features.QR, true},
		{"Clipboard", cfg.Features.Clipboard, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"http_addr", "KINUN_HTTP_ADDR", ":9090", func(c Config) any { return c.HTTPAddr }, ":9090"},
		{"log_level", "KINUN_LOG_LEVEL", "DEBUG", func(c Config) any { return c.LogLevel }, slog.LevelDebug},
		{"account_id", "KINUN_LINE_ACCOUNT_ID", "@other", func(c Config) any { return c.Line.AccountID }, "@other"},
		{"year_min", "KINUN_FORM_YEAR_MIN", "1900", func(c Config) any { return c.Form.YearMin }, 1900},
		{"qr", "KINUN_FEATURES_QR", "false", func(c Config) any { return c.Features.QR }, false},
		{"shutdown_timeout", "KINUN_SHUTDOWN_TIMEOUT", "3s", func(c Config) any { return c.ShutdownTimeout }, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load(New())
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]any
	}{
		{"bad log level", map[string]any{"log_level": "loud"}},
		{"empty account", map[string]any{"line.account_id": " "}},
		{"inverted years", map[string]any{"form.year_min": 2011, "form.year_max": 2010}},
		{"zero shutdown", map[string]any{"shutdown_timeout": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}
