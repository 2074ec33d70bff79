package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// queryLexer splits raw query text into words and commas. Whitespace is
// restricted to the ASCII set so that other control characters stay inside
// words.
var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comma", Pattern: `,`},
	{Name: "Word", Pattern: `[^ \t\n\r\f,]+`},
	{Name: "Whitespace", Pattern: `[ \t\n\r\f]+`},
})

// Split breaks a query into its ordered token sequence.
//
// The input is split on runs of ASCII whitespace and every comma is separated
// into its own "," token, so "a,b" and "a ,b" both produce ["a", ",", "b"].
// Tokens keep their original casing.
//
// Example:
//
//	tokens, err := parser.Split("SELECT a, b\nFROM t")
//	// tokens: ["SELECT", "a", ",", "b", "FROM", "t"]
func Split(query string) ([]string, error) {
	lex, err := queryLexer.LexString("", query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize query")
	}

	symbols := queryLexer.Symbols()
	word, comma := symbols["Word"], symbols["Comma"]

	var tokens []string
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, errors.Wrap(err, "failed to tokenize query")
		}

		if tok.EOF() {
			return tokens, nil
		}

		if tok.Type == word || tok.Type == comma {
			tokens = append(tokens, tok.Value)
		}
	}
}
