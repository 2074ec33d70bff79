package parser

// Depth returns the number of markers on the stack.
func (g *GroupStack) Depth() int {
	return g.depth()
}
