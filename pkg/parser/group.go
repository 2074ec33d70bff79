package parser

// GroupStack tracks the parentheses and single-quoted literals that are
// currently open while walking a token stream. A single stack is shared by
// every token of one segmentation run; it is never reset between tokens.
type GroupStack struct {
	marks []rune
}

// Update scans token left to right and applies each group marker to the stack.
//
// Rules per character:
//   - anything other than '(', ')' or a single quote is ignored
//   - on an empty stack the marker is pushed, including a stray ')'
//   - inside a quoted literal only a single quote matters and it closes the literal
//   - otherwise '(' pushes and ')' pops a matching '(' or is pushed as a stray
//
// Quotes opened while a parenthesis is on top are not tracked.
func (g *GroupStack) Update(token string) {
	for _, c := range token {
		if !isGroupMark(c) {
			continue
		}

		if len(g.marks) == 0 {
			g.marks = append(g.marks, c)
			continue
		}

		top := g.marks[len(g.marks)-1]
		switch {
		case top == '\'':
			if c == '\'' {
				g.pop()
			}
		case c == '(':
			g.marks = append(g.marks, c)
		case c == ')':
			if top == '(' {
				g.pop()
			} else {
				g.marks = append(g.marks, c)
			}
		}
	}
}

// InGroup reports whether any group is still open.
func (g *GroupStack) InGroup() bool {
	return len(g.marks) > 0
}

func (g *GroupStack) depth() int {
	return len(g.marks)
}

func (g *GroupStack) pop() {
	g.marks = g.marks[:len(g.marks)-1]
}

func isGroupMark(c rune) bool {
	return c == '(' || c == ')' || c == '\''
}
