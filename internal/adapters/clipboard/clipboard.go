package clipboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// writeAll is a package-level variable to allow mocking in tests.
var writeAll = sysclip.WriteAll

// System implements ports.Clipboard with the OS clipboard. When that is
// unavailable (headless, SSH) it asks the terminal to take the text via an
// OSC 52 escape written to out.
type System struct {
	out    io.Writer
	tmux   bool
	logger *slog.Logger
}

// New returns a clipboard that falls back to out. A nil out disables the
// fallback. Set tmux when running inside tmux so the escape is passed through.
func New(out io.Writer, tmux bool, logger *slog.Logger) *System {
	return &System{out: out, tmux: tmux, logger: logger}
}

func (s *System) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := writeAll(text)
	if err == nil {
		return nil
	}
	if s.out == nil {
		return fmt.Errorf("system clipboard: %w", err)
	}

	s.logger.DebugContext(ctx, "system clipboard unavailable, using OSC 52", "error", err)

	seq := osc52.New(text)
	if s.tmux {
		seq = seq.Tmux()
	}
	if _, werr := seq.WriteTo(s.out); werr != nil {
		return fmt.Errorf("system clipboard: %w; osc52: %w", err, werr)
	}
	return nil
}
