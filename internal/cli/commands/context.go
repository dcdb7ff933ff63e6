// Package commands implements the veclint subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/veclint/veclint/internal/cli/config"
	"github.com/veclint/veclint/internal/cli/output"
)

// Runtime carries the resolved configuration, renderer, and logger that
// the root command prepares for every subcommand.
type Runtime struct {
	Cfg      *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
}

// runtimeKey is used to store the runtime in the command context.
type runtimeKey struct{}

// WithRuntime returns a context carrying the runtime.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// RuntimeFrom retrieves the runtime prepared by the root command. Falls
// back to defaults so commands remain usable in tests that bypass the
// root command.
func RuntimeFrom(cmd *cobra.Command) *Runtime {
	if rt, ok := cmd.Context().Value(runtimeKey{}).(*Runtime); ok {
		return rt
	}
	return &Runtime{
		Cfg:      &config.Config{},
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeText),
		Logger:   slog.Default(),
	}
}
