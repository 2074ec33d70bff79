package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pseudomuto/sqlalign/pkg/cmd"
	"github.com/pseudomuto/sqlalign/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.WithLogger(newLogger),
		fx.Supply(&cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		fx.Provide(
			func() []string { return os.Args },
			func() context.Context { return context.Background() },
		),
		config.Module,
		cmd.Module,
	).Run()
}

// newLogger keeps fx lifecycle events at debug level so only failures reach
// stderr.
func newLogger() fxevent.Logger {
	logger := &fxevent.SlogLogger{Logger: slog.Default()}
	logger.UseLogLevel(slog.LevelDebug)
	return logger
}
