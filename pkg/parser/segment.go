package parser

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedInput is returned when a multi-word keyword phrase is cut off
// by the end of the token stream. Use errors.Cause to match it.
var ErrMalformedInput = errors.New("malformed input")

// Clause is a single (label, body) pair produced by Segment.
type Clause struct {
	Label string
	Body  string
}

// segmenter holds the state of one segmentation run.
type segmenter struct {
	tokens []string
	pos    int

	label  []string
	body   []string
	out    []string
	groups GroupStack
}

// Segment groups tokens into clauses and returns them flattened as
// [label0, body0, label1, body1, ...]. The result always has an even length.
//
// The first token always seeds the first label. After that every keyword
// (see IsKeyword) closes the current clause and opens a new one whose label is
// the keyword phrase: INNER, OUTER, GROUP and CLUSTER take the next token,
// LEFT and RIGHT take the next token and, when that token is exactly "outer",
// one more. Any other token is appended to the current body.
//
// A body token that opens a parenthesis or quoted literal switches the
// segmenter into absorbing mode: following tokens go straight into the body,
// keywords included, until every group is closed again. Groups still open at
// the end of input are tolerated.
//
// Example:
//
//	out, err := parser.Segment([]string{"select", "a", ",", "b", "from", "t1", "INNER", "JOIN", "t2"})
//	// out: ["select", "a", ",", "b", "from", "t1", "INNER JOIN", "t2"]
//
// Returns an error wrapping ErrMalformedInput when a phrase keyword has no
// following token to complete it. No partial output is returned in that case.
func Segment(tokens []string) ([]string, error) {
	s := &segmenter{tokens: tokens}
	return s.run()
}

// Clauses pairs up the flattened output of Segment.
func Clauses(out []string) []Clause {
	clauses := make([]Clause, 0, len(out)/2)
	for i := 0; i+1 < len(out); i += 2 {
		clauses = append(clauses, Clause{Label: out[i], Body: out[i+1]})
	}

	return clauses
}

func (s *segmenter) run() ([]string, error) {
	if tok, ok := s.next(); ok {
		s.label = []string{tok}
	}

	for {
		tok, ok := s.next()
		if !ok {
			break
		}

		rule, ok := lookupKeyword(tok)
		if !ok {
			s.absorb(tok)
			continue
		}

		s.flush()

		label, err := s.phrase(tok, rule)
		if err != nil {
			return nil, err
		}

		s.label = label
		s.body = nil
	}

	s.flush()
	return s.out, nil
}

// absorb appends tok to the body and, if it leaves a group open, keeps
// consuming tokens until the group closes or the input runs out.
func (s *segmenter) absorb(tok string) {
	s.body = append(s.body, tok)
	s.groups.Update(tok)

	for s.groups.InGroup() {
		next, ok := s.next()
		if !ok {
			return
		}

		s.body = append(s.body, next)
		s.groups.Update(next)
	}
}

// phrase builds the label that starts with keyword kw.
func (s *segmenter) phrase(kw string, rule phraseRule) ([]string, error) {
	switch rule {
	case twoWord:
		next, ok := s.next()
		if !ok {
			return nil, s.malformed(kw)
		}

		return []string{kw, next}, nil
	case maybeThreeWord:
		next, ok := s.next()
		if !ok {
			return nil, nil
		}

		// NB: case-sensitive on purpose; "LEFT OUTER" stays a two-word label.
		if next != "outer" {
			return []string{kw, next}, nil
		}

		last, ok := s.next()
		if !ok {
			return nil, s.malformed(kw + " " + next)
		}

		return []string{kw, next, last}, nil
	default:
		return []string{kw}, nil
	}
}

func (s *segmenter) flush() {
	s.out = append(s.out, strings.Join(s.label, " "), strings.Join(s.body, " "))
}

func (s *segmenter) next() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}

	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

func (s *segmenter) malformed(phrase string) error {
	return errors.Wrapf(ErrMalformedInput, "%q at token %d is missing the rest of its phrase", phrase, s.pos)
}
