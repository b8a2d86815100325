package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/randomtoy/kinun-go/internal/app"
)

// NewProgram creates a BubbleTea program over session using the alternate
// screen buffer.
func NewProgram(ctx context.Context, session *app.Session, opts ...tea.ProgramOption) *tea.Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(NewModel(ctx, session), allOpts...)
}

// Run blocks until the user quits.
func Run(ctx context.Context, session *app.Session, opts ...tea.ProgramOption) error {
	if _, err := NewProgram(ctx, session, opts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput directs TUI output to w.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
