package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	deleteColor = color.New(color.FgRed)
	insertColor = color.New(color.FgGreen)
	headerColor = color.New(color.Bold)
)

// writeDiff writes a line-based diff between the original and formatted
// content of name. Colors are applied only when stdout is a terminal.
func writeDiff(w io.Writer, name, original, formatted string) error {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, formatted)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	headerColor.Fprintf(&sb, "--- %s\n+++ %s (formatted)\n", name, name)

	for _, d := range diffs {
		for _, line := range diffLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				deleteColor.Fprintf(&sb, "-%s\n", line)
			case diffpatch.DiffInsert:
				insertColor.Fprintf(&sb, "+%s\n", line)
			case diffpatch.DiffEqual:
				fmt.Fprintf(&sb, " %s\n", line)
			}
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "failed to write diff to output")
	}

	return nil
}

// diffLines splits a diff chunk into lines without a trailing empty entry.
func diffLines(text string) []string {
	if text == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
