// Package format renders segmented SQL as a two-column, clause-aligned layout.
//
// The left column holds clause labels (SELECT, FROM, INNER JOIN, ",", ...)
// right-justified to a common width; the right column holds each clause body
// verbatim, separated from its label by a single space.
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	var buf bytes.Buffer
//	err := formatter.FormatString(&buf, "SELECT a, b FROM t WHERE a = 1")
//
//	// Functional API over already segmented output
//	out, _ := parser.Segment(tokens)
//	err := format.Format(&buf, format.Defaults, out...)
//
// Output for the query above:
//
//	SELECT a
//	     , b
//	  FROM t
//	 WHERE a = 1
//
// Formatting is all or nothing: when the query cannot be segmented nothing is
// written to the destination.
package format
