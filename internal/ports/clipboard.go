package ports

import "context"

// Clipboard copies text for the user to paste elsewhere.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}
