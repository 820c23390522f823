package commands

import (
	"context"
	"log/slog"

	"github.com/jmylchreest/keylab/internal/config"
	"github.com/jmylchreest/keylab/internal/events"
	"github.com/spf13/cobra"
)

// appContextKey is used for storing the App in the command context.
type appContextKey struct{}

// App carries what every command needs, set up once by the root command.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Bus    *events.Bus
}

func withApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appContextKey{}, app)
}

// appFromCmd returns the App stored in the command context, if any
func appFromCmd(cmd *cobra.Command) (*App, bool) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, false
	}
	app, ok := ctx.Value(appContextKey{}).(*App)
	return app, ok && app != nil
}
