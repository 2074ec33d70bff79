package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/consts"
	"github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/urfave/cli/v3"
)

const stdinName = "<standard input>"

// fmtOptions selects what happens with each formatted input. With no option
// set the aligned query is written to the command's writer.
type fmtOptions struct {
	write bool
	list  bool
	diff  bool
}

// fmtCmd creates a CLI command for aligning SQL queries, gofmt style.
//
// Path handling:
//   - no path or "-": read a single query from standard input
//   - file paths: format the specified file, treating its content as one query
//   - directory paths: recursively format every .sql file, in lexical order
//
// Flags:
//   - -w: write results back to the source files instead of stdout
//   - -l: list files whose formatting differs from sqlalign's
//   - -d: display diffs instead of rewriting files
//   - -u: upper-case clause keywords (overrides config)
//   - --min-width: minimum width of the keyword column (overrides config)
//
// Examples:
//
//	# Format a query from stdin
//	echo "select a from t" | sqlalign fmt
//
//	# Format all SQL files in a directory tree in-place
//	sqlalign fmt -w queries/
//
// A query that cannot be segmented fails the command; nothing is written for
// that input.
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL queries",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:    "diff",
				Aliases: []string{"d"},
				Usage:   "Display diffs instead of rewriting files",
			},
			&cli.BoolFlag{
				Name:    "uppercase",
				Aliases: []string{"u"},
				Usage:   "Upper-case clause keywords",
			},
			&cli.IntFlag{
				Name:  "min-width",
				Usage: "Minimum width of the keyword column",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one path argument is allowed")
			}

			formatter, err := commandFormatter(ctx, cmd)
			if err != nil {
				return err
			}

			opts := fmtOptions{
				write: cmd.Bool("write"),
				list:  cmd.Bool("list"),
				diff:  cmd.Bool("diff"),
			}

			path := cmd.Args().First()
			if path == "" || path == "-" {
				if opts.write {
					return errors.New("cannot use -w with standard input")
				}

				return formatStdin(ctx, cmd, formatter, opts)
			}

			_, writer := commandIO(cmd)
			return formatPath(path, formatter, opts, writer)
		},
	}
}

// commandFormatter applies the command's flag overrides on top of the
// formatter configured by the root command.
func commandFormatter(ctx context.Context, cmd *cli.Command) (*format.Formatter, error) {
	formatter := formatterFrom(ctx)
	if !cmd.IsSet("uppercase") && !cmd.IsSet("min-width") {
		return formatter, nil
	}

	options := formatter.Options()
	if cmd.IsSet("uppercase") {
		options.UppercaseKeywords = cmd.Bool("uppercase")
	}

	if cmd.IsSet("min-width") {
		width := cmd.Int("min-width")
		if width < 0 {
			return nil, errors.Errorf("--min-width must not be negative, got %d", width)
		}

		options.MinWidth = int(width)
	}

	return format.New(options), nil
}

// formatStdin reads the whole of the command's reader and formats it as a
// single query.
func formatStdin(_ context.Context, cmd *cli.Command, formatter *format.Formatter, opts fmtOptions) error {
	reader, writer := commandIO(cmd)

	if f, ok := reader.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		slog.Warn("Reading query from terminal, finish input with Ctrl-D")
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return errors.Wrap(err, "failed to read standard input")
	}

	formatted, err := formatContent(formatter, content)
	if err != nil {
		return err
	}

	return report(writer, stdinName, string(content), formatted, opts)
}

// commandIO returns the streams of the root command. urfave/cli gives every
// subcommand its own os.Stdin/os.Stdout defaults, so only the root carries the
// streams the application was started with.
func commandIO(cmd *cli.Command) (io.Reader, io.Writer) {
	root := cmd.Root()
	return root.Reader, root.Writer
}

// formatPath handles formatting of either a single file or directory recursively.
// It determines the input type (file vs directory) and dispatches to the appropriate
// formatting function.
func formatPath(path string, formatter *format.Formatter, opts fmtOptions, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(path, formatter, opts, writer)
	}

	return formatFile(path, formatter, opts, writer)
}

// formatDirectory recursively walks through a directory and formats all .sql files.
// It processes files in lexicographical order for consistent behavior across platforms.
// Every file is formatted before any of them is reported or written back, so a
// query that fails to format leaves the whole tree untouched.
func formatDirectory(dir string, formatter *format.Formatter, opts fmtOptions, writer io.Writer) error {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), consts.SQLExtension) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(paths) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	sort.Strings(paths)
	slog.Debug("Formatting directory", "dir", dir, "files", len(paths))

	files := make([]sqlFile, 0, len(paths))
	for _, path := range paths {
		file, err := loadFile(path, formatter)
		if err != nil {
			return errors.Wrapf(err, "failed to format file: %s", path)
		}

		files = append(files, file)
	}

	for _, file := range files {
		if err := file.commit(opts, writer); err != nil {
			return err
		}
	}

	return nil
}

// formatFile formats a single SQL file and reports the result according to
// opts.
func formatFile(path string, formatter *format.Formatter, opts fmtOptions, writer io.Writer) error {
	file, err := loadFile(path, formatter)
	if err != nil {
		return err
	}

	return file.commit(opts, writer)
}

// sqlFile is a query file together with its formatted content.
type sqlFile struct {
	path      string
	mode      fs.FileMode
	original  string
	formatted string
}

func loadFile(path string, formatter *format.Formatter) (sqlFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return sqlFile{}, errors.Wrapf(err, "failed to access path: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return sqlFile{}, errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted, err := formatContent(formatter, content)
	if err != nil {
		return sqlFile{}, errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	slog.Debug("Formatted file", "path", path, "changed", formatted != string(content))

	return sqlFile{
		path:      path,
		mode:      info.Mode().Perm(),
		original:  string(content),
		formatted: formatted,
	}, nil
}

// commit reports the file according to opts. Write-back keeps the file's
// permissions and skips unchanged files.
func (f sqlFile) commit(opts fmtOptions, writer io.Writer) error {
	if err := report(writer, f.path, f.original, f.formatted, opts); err != nil {
		return err
	}

	if opts.write && f.formatted != f.original {
		if err := os.WriteFile(f.path, []byte(f.formatted), f.mode); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", f.path)
		}
	}

	return nil
}

func formatContent(formatter *format.Formatter, content []byte) (string, error) {
	var buf bytes.Buffer
	if err := formatter.FormatString(&buf, string(content)); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// report writes the outcome for one input: its name when listing, a diff when
// diffing, and the formatted query when neither of those nor write-back is
// requested.
func report(w io.Writer, name, original, formatted string, opts fmtOptions) error {
	changed := original != formatted

	if opts.list && changed {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return errors.Wrap(err, "failed to write file name to output")
		}
	}

	if opts.diff && changed {
		if err := writeDiff(w, name, original, formatted); err != nil {
			return err
		}
	}

	if opts.write || opts.list || opts.diff {
		return nil
	}

	if _, err := fmt.Fprint(w, formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
