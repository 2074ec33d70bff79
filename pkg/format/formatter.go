package format

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/consts"
	"github.com/pseudomuto/sqlalign/pkg/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// UppercaseKeywords upper-cases every clause label before alignment
		UppercaseKeywords bool
		// MinWidth is the minimum width of the label column
		MinWidth int
	}

	// Formatter aligns clause labels and bodies with configurable options
	Formatter struct {
		options FormatterOptions
	}
)

// Defaults reproduces the plain layout: labels untouched, column as wide as
// the longest label.
var Defaults = FormatterOptions{
	UppercaseKeywords: consts.DefaultUppercaseKeywords,
	MinWidth:          consts.DefaultMinWidth,
}

// New creates a new Formatter with the specified options
func New(options FormatterOptions) *Formatter {
	return &Formatter{options: options}
}

// Options returns the options the formatter was built with.
func (f *Formatter) Options() FormatterOptions {
	return f.options
}

// Format writes the interleaved [label, body, ...] values produced by
// parser.Segment as aligned lines.
func Format(w io.Writer, opts FormatterOptions, out ...string) error {
	return New(opts).Format(w, out...)
}

// Format writes out as aligned lines. out must hold label/body pairs.
func (f *Formatter) Format(w io.Writer, out ...string) error {
	if len(out)%2 != 0 {
		return errors.Errorf("expected label/body pairs, got %d values", len(out))
	}

	out = f.labels(out)

	width := Width(out)
	if width < f.options.MinWidth {
		width = f.options.MinWidth
	}

	var buf bytes.Buffer
	for _, c := range parser.Clauses(out) {
		if pad := width - utf8.RuneCountInString(c.Label); pad > 0 {
			buf.WriteString(strings.Repeat(" ", pad))
		}

		buf.WriteString(c.Label)
		buf.WriteByte(' ')
		buf.WriteString(c.Body)
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return errors.Wrap(err, "failed to write formatted query")
}

// FormatString tokenizes, segments and aligns query.
func (f *Formatter) FormatString(w io.Writer, query string) error {
	tokens, err := parser.Split(query)
	if err != nil {
		return err
	}

	out, err := parser.Segment(tokens)
	if err != nil {
		return errors.Wrap(err, "failed to segment query")
	}

	return f.Format(w, out...)
}

// FormatReader reads r to the end and formats its contents as a single query.
func (f *Formatter) FormatReader(w io.Writer, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read query")
	}

	return f.FormatString(w, string(content))
}

// Width returns the widest label among out's even indices. The last index is
// never considered, even when it is even.
func Width(out []string) int {
	width := 0
	for i := 0; i < len(out)-1; i += 2 {
		if n := utf8.RuneCountInString(out[i]); n > width {
			width = n
		}
	}

	return width
}

// labels returns out with the label transformations applied. The input slice
// is left untouched.
func (f *Formatter) labels(out []string) []string {
	if !f.options.UppercaseKeywords {
		return out
	}

	upper := cases.Upper(language.Und)
	res := make([]string, len(out))
	copy(res, out)
	for i := 0; i < len(res); i += 2 {
		res[i] = upper.String(res[i])
	}

	return res
}
