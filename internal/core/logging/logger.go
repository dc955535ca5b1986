// Package logging holds the logger helpers shared by bingo components.
package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// ComponentCtx is Component with the context hook attached and ctx bound, so
// every event carries the board and command stored in ctx.
func ComponentCtx(ctx context.Context, name string) zerolog.Logger {
	return Component(name).Hook(ContextHook{}).With().Ctx(ctx).Logger()
}
