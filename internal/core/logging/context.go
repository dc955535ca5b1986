package logging

import "context"

type contextKey string

const (
	boardIDKey contextKey = "board_id"
	commandKey contextKey = "command"
)

// WithBoardID adds a board ID to the context.
func WithBoardID(ctx context.Context, boardID string) context.Context {
	return context.WithValue(ctx, boardIDKey, boardID)
}

// WithCommand adds the running command name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// GetBoardID retrieves the board ID from the context.
// Returns empty string if not present.
func GetBoardID(ctx context.Context) string {
	if id, ok := ctx.Value(boardIDKey).(string); ok {
		return id
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
