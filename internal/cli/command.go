package cli

import "context"

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}
