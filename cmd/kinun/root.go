package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randomtoy/kinun-go/internal/app"
	"github.com/randomtoy/kinun-go/internal/config"
	"github.com/randomtoy/kinun-go/internal/line"
)

// v is the process-wide configuration source.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:           "kinun",
	Short:         "Day-stem money fortune diagnosis",
	Long:          "kinun maps a birth date to one of ten day-stem archetypes and builds a LINE hand-off for the result.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .kinun.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".kinun")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	// It's fine if no config file is found; we use defaults.
	_ = v.ReadInConfig()
}

// loadConfig resolves configuration and applies --verbose.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func newService(cfg config.Config) (*app.DiagnosisService, error) {
	links, err := line.New(cfg.Line.AccountID)
	if err != nil {
		return nil, err
	}
	return app.NewDiagnosisService(links), nil
}
