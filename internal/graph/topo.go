package graph

// TopologicalOrder returns nodes in an order where all dependencies come
// before the nodes that depend on them. Uses Kahn's algorithm.
//
// If there are cycles, the returned order will include all non-cyclic nodes
// in valid order, followed by the cyclic nodes. The second return value
// contains any nodes that couldn't be ordered due to cycles.
func (g *Graph[T]) TopologicalOrder() (order []T, cyclic []T) {
	// inDegree[n] counts n's unresolved dependencies (len(g.edges[n])), not
	// incoming edges in g.edges itself: g.edges[n] lists what n depends on,
	// so a node is only ready once every entry in its own list has been
	// emitted.
	inDegree := make(map[T]int, len(g.nodes))
	for n := range g.nodes {
		inDegree[n] = len(g.edges[n])
	}

	var queue []T
	for n, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		for _, dependent := range g.reverse[n] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	for n, degree := range inDegree {
		if degree > 0 {
			cyclic = append(cyclic, n)
			order = append(order, n)
		}
	}

	return order, cyclic
}

// ResolutionOrder returns nodes with every node before the nodes it
// depends on. This is the reverse of TopologicalOrder.
func (g *Graph[T]) ResolutionOrder() (order []T, cyclic []T) {
	topo, cyc := g.TopologicalOrder()
	for i := len(topo) - 1; i >= 0; i-- {
		order = append(order, topo[i])
	}
	return order, cyc
}
