// Package parser splits free-form SQL text into clause-aligned segments.
//
// It does not build an expression tree. Clause boundaries come purely from
// lexical keyword recognition, with parentheses and single-quoted literals
// treated as opaque spans.
//
// The package exposes three steps:
//   - Split turns raw text into tokens, separating commas into their own tokens
//   - GroupStack tracks open parentheses and quoted literals across tokens
//   - Segment walks the tokens and emits interleaved (label, body) strings
//
// Basic usage:
//
//	tokens, err := parser.Split("SELECT a, b FROM t1 INNER JOIN t2 ON t1.id = t2.id")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, err := parser.Segment(tokens)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, c := range parser.Clauses(out) {
//		fmt.Printf("%s | %s\n", c.Label, c.Body)
//	}
//
// Recognized keywords are select, from, where, left, right, inner, outer,
// join, on, group, cluster, having, top, limit and the comma. Matching is
// case-insensitive.
package parser
