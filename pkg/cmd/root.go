package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/config"
	"github.com/pseudomuto/sqlalign/pkg/consts"
	"github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/pseudomuto/sqlalign/pkg/parser"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Formatter  *format.Formatter
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version

		// Stdin and Stdout replace the process streams when provided.
		Stdin  io.Reader `name:"stdin" optional:"true"`
		Stdout io.Writer `name:"stdout" optional:"true"`
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	formatterKey struct{}
)

// Run creates the sqlalign CLI application and starts it once the fx
// application has started. The command runs in its own goroutine, since it may
// block on standard input for as long as it takes to arrive, and shuts the
// application down with exit code 1 when it fails and 0 otherwise.
//
// Without a subcommand the application reads a query from standard input and
// writes the aligned layout to standard output:
//
//	echo "select a, b from t where a = 1" | sqlalign
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p.Version.Version, p.Formatter, p.Commands)
	if p.Stdin != nil {
		app.Reader = p.Stdin
	}

	if p.Stdout != nil {
		app.Writer = p.Stdout
	}

	ctx, cancel := context.WithCancel(p.Ctx)

	p.Lifecycle.Append(fx.StartStopHook(
		func() {
			go func() {
				code := 0
				if err := app.Run(ctx, p.Args); err != nil {
					slog.Error("Error running command", "err", err.Error())
					slog.Debug("Command failed", "trace", fmt.Sprintf("%+v", err))
					code = 1
				}

				_ = p.Shutdowner.Shutdown(fx.ExitCode(code))
			}()
		},
		cancel,
	))
}

// newApp builds the root command. The formatter is used unless a configuration
// file is found (--config, SQLALIGN_CONFIG or sqlalign.yaml in the working
// directory), in which case the file wins.
func newApp(version string, formatter *format.Formatter, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "sqlalign",
		Usage: "Align SQL clauses into a readable two-column layout",
		Description: `sqlalign reads a SQL query and prints it with every clause keyword
right-aligned in one column and the clause body in the next.

Clause keywords: ` + strings.Join(parser.Keywords(), " "),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlalign config file",
				Sources: cli.EnvVars(consts.ConfigEnvVar),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrWriter, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			// An explicit --config (or its env var) must exist; the default
			// sqlalign.yaml is only used when present.
			path := cmd.String("config")
			if !cmd.IsSet("config") {
				if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
					return withFormatter(ctx, formatter), nil
				}
			}

			cfg, err := config.LoadConfigFile(path)
			if err != nil {
				return ctx, errors.Wrap(err, "failed to load config")
			}

			slog.Debug("Loaded config", "path", path)
			return withFormatter(ctx, cfg.GetFormatter()), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return errors.Errorf("unknown command: %s", cmd.Args().First())
			}

			return formatStdin(ctx, cmd, formatterFrom(ctx), fmtOptions{})
		},
		Commands: commands,
	}
}

func withFormatter(ctx context.Context, f *format.Formatter) context.Context {
	if f == nil {
		return ctx
	}

	return context.WithValue(ctx, formatterKey{}, f)
}

// formatterFrom returns the formatter stored by the root command, falling
// back to the default options.
func formatterFrom(ctx context.Context) *format.Formatter {
	if f, ok := ctx.Value(formatterKey{}).(*format.Formatter); ok {
		return f
	}

	return format.New(format.Defaults)
}
