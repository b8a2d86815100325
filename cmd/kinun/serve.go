package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	httpadapter "github.com/randomtoy/kinun-go/internal/adapters/http"
	"github.com/randomtoy/kinun-go/internal/adapters/qr"
	"github.com/randomtoy/kinun-go/internal/app"
	"github.com/randomtoy/kinun-go/internal/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the diagnosis HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides http_addr)")
	_ = v.BindPFlag("http_addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, os.Stdout, true)
	slog.SetDefault(logger)

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	var encoder ports.QREncoder
	if cfg.Features.QR {
		encoder = qr.NewEncoder()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, app.NewFormOptions(cfg.Form.YearMin, cfg.Form.YearMax), encoder)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "line_account", cfg.Line.AccountID)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
