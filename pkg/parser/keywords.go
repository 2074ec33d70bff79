package parser

import (
	"sort"
	"strings"
)

// phraseRule describes how many tokens a keyword pulls into its clause label.
type phraseRule int

const (
	// singleWord labels consist of the keyword alone (SELECT, FROM, ",").
	singleWord phraseRule = iota
	// twoWord labels always take the following token (INNER JOIN, GROUP BY).
	twoWord
	// maybeThreeWord labels take the following token, plus one more when that
	// token is exactly "outer" (LEFT JOIN, LEFT outer JOIN).
	maybeThreeWord
)

var keywords = map[string]phraseRule{
	"select":  singleWord,
	"from":    singleWord,
	"where":   singleWord,
	"left":    maybeThreeWord,
	"right":   maybeThreeWord,
	"inner":   twoWord,
	"outer":   twoWord,
	"join":    singleWord,
	"on":      singleWord,
	"group":   twoWord,
	"cluster": twoWord,
	"having":  singleWord,
	"top":     singleWord,
	"limit":   singleWord,
	",":       singleWord,
}

// IsKeyword reports whether token starts a new clause. Matching ignores case.
func IsKeyword(token string) bool {
	_, ok := keywords[strings.ToLower(token)]
	return ok
}

// Keywords returns the lower-cased clause keywords, sorted.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for kw := range keywords {
		words = append(words, kw)
	}

	sort.Strings(words)
	return words
}

func lookupKeyword(token string) (phraseRule, bool) {
	rule, ok := keywords[strings.ToLower(token)]
	return rule, ok
}
