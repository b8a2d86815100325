package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/randomtoy/kinun-go/internal/adapters/clipboard"
	"github.com/randomtoy/kinun-go/internal/adapters/qr"
	"github.com/randomtoy/kinun-go/internal/adapters/tui"
	"github.com/randomtoy/kinun-go/internal/app"
	"github.com/randomtoy/kinun-go/internal/ports"
)

// tuiCmd runs the interactive intro, form and result flow.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive diagnosis in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().Bool("no-qr", false, "disable the LINE QR share screen")
	tuiCmd.Flags().Bool("no-copy", false, "disable copying the message")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("kinun tui requires a TTY (terminal)")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if off, _ := cmd.Flags().GetBool("no-qr"); off {
		cfg.Features.QR = false
	}
	if off, _ := cmd.Flags().GetBool("no-copy"); off {
		cfg.Features.Clipboard = false
	}

	// The TUI owns stdout; logs go to stderr.
	logger := newLogger(cfg, os.Stderr, false)

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	var (
		cb      ports.Clipboard
		encoder ports.QREncoder
	)
	if cfg.Features.Clipboard {
		cb = clipboard.New(os.Stdout, os.Getenv("TMUX") != "", logger)
	}
	if cfg.Features.QR {
		encoder = qr.NewEncoder()
	}

	session := app.NewSession(
		svc,
		app.NewFormOptions(cfg.Form.YearMin, cfg.Form.YearMax),
		app.Features{QR: cfg.Features.QR, Clipboard: cfg.Features.Clipboard},
		cb,
		encoder,
	)
	return tui.Run(cmd.Context(), session)
}
