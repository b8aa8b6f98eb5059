package exam

// Walk visits c and its descendants depth-first, pre-order, children in
// insertion order. Returning false from fn stops the walk.
func Walk(c Component, depth int, fn func(c Component, depth int) bool) bool {
	if !fn(c, depth) {
		return false
	}
	s, ok := c.(*Section)
	if !ok {
		return true
	}
	for _, child := range s.children {
		if !Walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// Questions lists every question under c in traversal order.
func Questions(c Component) []*Question {
	var out []*Question
	Walk(c, 0, func(n Component, _ int) bool {
		if q, ok := n.(*Question); ok {
			out = append(out, q)
		}
		return true
	})
	return out
}
