package parser_test

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqlalign/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected []string
	}{
		{
			name:     "simple select",
			tokens:   []string{"select", "*", "FROM", "a"},
			expected: []string{"select", "*", "FROM", "a"},
		},
		{
			name: "join with select list",
			tokens: []string{
				"select", "a", ",", "b", "as", "bbb", "from", "t1", "INNER",
				"JOIN", "t2", "on", "t1.id", "=", "t2.id", "where", "t1.id", "=", "1",
			},
			expected: []string{
				"select", "a", ",", "b as bbb", "from", "t1", "INNER JOIN",
				"t2", "on", "t1.id = t2.id", "where", "t1.id = 1",
			},
		},
		{
			name:     "comma inside parens",
			tokens:   []string{"select", "concat(a", ",", "b)"},
			expected: []string{"select", "concat(a , b)"},
		},
		{
			name:     "parens inside quoted literal",
			tokens:   []string{"select", "con('f)()'", ",", "'()'"},
			expected: []string{"select", "con('f)()' , '()'"},
		},
		{
			name:     "keyword inside quoted literal",
			tokens:   []string{"select", "'a", "from", "b'", "from", "t"},
			expected: []string{"select", "'a from b'", "from", "t"},
		},
		{
			name:     "group closes before next keyword",
			tokens:   []string{"select", "count(*)", "from", "t", "group", "by", "x"},
			expected: []string{"select", "count(*)", "from", "t", "group by", "x"},
		},
		{
			name:     "group by and having",
			tokens:   []string{"SELECT", "x", "FROM", "t", "GROUP", "BY", "x", "HAVING", "count(x)", ">", "1", "LIMIT", "10"},
			expected: []string{"SELECT", "x", "FROM", "t", "GROUP BY", "x", "HAVING", "count(x) > 1", "LIMIT", "10"},
		},
		{
			name:     "cluster by",
			tokens:   []string{"select", "a", "from", "t", "cluster", "by", "a"},
			expected: []string{"select", "a", "from", "t", "cluster by", "a"},
		},
		{
			name:     "left join",
			tokens:   []string{"select", "a", "from", "t1", "LEFT", "JOIN", "t2", "ON", "x"},
			expected: []string{"select", "a", "from", "t1", "LEFT JOIN", "t2", "ON", "x"},
		},
		{
			name:     "right outer join",
			tokens:   []string{"select", "a", "from", "t1", "right", "outer", "join", "t2"},
			expected: []string{"select", "a", "from", "t1", "right outer join", "t2"},
		},
		{
			name:     "outer keyword on its own",
			tokens:   []string{"select", "a", "from", "t1", "full", "OUTER", "JOIN", "t2"},
			expected: []string{"select", "a", "from", "t1 full", "OUTER JOIN", "t2"},
		},
		{
			name:     "top",
			tokens:   []string{"select", "top", "10", "a", "from", "t"},
			expected: []string{"select", "", "top", "10 a", "from", "t"},
		},
		{
			name:     "first token is never matched",
			tokens:   []string{"from", "t", "select", "a"},
			expected: []string{"from", "t", "select", "a"},
		},
		{
			name:     "unbalanced group at end of input",
			tokens:   []string{"select", "concat(a", ",", "b", "from", "t"},
			expected: []string{"select", "concat(a , b from t"},
		},
		{
			name:     "single token",
			tokens:   []string{"select"},
			expected: []string{"select", ""},
		},
		{
			name:     "empty input",
			tokens:   nil,
			expected: []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Segment(tt.tokens)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
			require.Zero(t, len(out)%2)
		})
	}
}

func TestSegment_StrayCloserAbsorbsRemainingInput(t *testing.T) {
	// An unmatched ')' stays on the group stack, so every later token,
	// keywords included, lands in the same body.
	out, err := Segment([]string{"select", "con())", "from", "b"})
	require.NoError(t, err)
	require.Equal(t, []string{"select", "con()) from b"}, out)

	out, err = Segment([]string{"select", "a)", ",", "b", "where", "c", "=", "1"})
	require.NoError(t, err)
	require.Equal(t, []string{"select", "a) , b where c = 1"}, out)
}

func TestSegment_LeftRightPhrases(t *testing.T) {
	t.Run("uppercase OUTER is not absorbed", func(t *testing.T) {
		out, err := Segment([]string{"select", "a", "from", "t1", "LEFT", "OUTER", "JOIN", "t2"})
		require.NoError(t, err)
		require.Equal(t, []string{"select", "a", "from", "t1", "LEFT OUTER", "", "JOIN", "t2"}, out)
	})

	t.Run("keyword at end of input yields an empty label", func(t *testing.T) {
		out, err := Segment([]string{"select", "a", "from", "t", "right"})
		require.NoError(t, err)
		require.Equal(t, []string{"select", "a", "from", "t", "", ""}, out)
	})

	t.Run("following token is taken verbatim", func(t *testing.T) {
		out, err := Segment([]string{"select", "a", "from", "t", "left", "where", "b"})
		require.NoError(t, err)
		require.Equal(t, []string{"select", "a", "from", "t", "left where", "b"}, out)
	})
}

func TestSegment_MalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		phrase string
	}{
		{name: "inner", tokens: []string{"select", "a", "from", "t", "INNER"}, phrase: `"INNER"`},
		{name: "outer", tokens: []string{"select", "a", "outer"}, phrase: `"outer"`},
		{name: "group", tokens: []string{"select", "a", "from", "t", "group"}, phrase: `"group"`},
		{name: "cluster", tokens: []string{"select", "a", "Cluster"}, phrase: `"Cluster"`},
		{name: "left outer", tokens: []string{"select", "a", "from", "t", "left", "outer"}, phrase: `"left outer"`},
		{name: "right outer", tokens: []string{"select", "a", "right", "outer"}, phrase: `"right outer"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Segment(tt.tokens)
			require.Error(t, err)
			require.Nil(t, out)
			require.Equal(t, ErrMalformedInput, errors.Cause(err))
			require.Contains(t, err.Error(), tt.phrase)
		})
	}
}

func TestSegment_BalancedGroupsNeverSplit(t *testing.T) {
	tokens := []string{"select", "f(a", ",", "b", "from", "c)", ",", "'x", ",", "where'", "from", "t"}

	out, err := Segment(tokens)
	require.NoError(t, err)
	require.Equal(t, []string{"select", "f(a , b from c)", ",", "'x , where'", "from", "t"}, out)
}

func TestClauses(t *testing.T) {
	out := []string{"select", "a", "from", "t"}
	require.Equal(t, []Clause{
		{Label: "select", Body: "a"},
		{Label: "from", Body: "t"},
	}, Clauses(out))

	require.Empty(t, Clauses(nil))
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"select", "FROM", "Where", "left", "RIGHT", "inner", "outer", "join", "on", "group", "cluster", "having", "top", "limit", ","} {
		require.True(t, IsKeyword(kw), kw)
	}

	for _, word := range []string{"by", "as", "order", "union", "selected", ";"} {
		require.False(t, IsKeyword(word), word)
	}

	require.Len(t, Keywords(), 15)
	require.IsNonDecreasing(t, Keywords())
}
