package surfgraph

// ConnectedComponents labels every vertex with its connected-component
// index in [0, k), by repeated breadth-first traversal starting from the
// lowest-indexed unvisited vertex each time, incrementing the component
// counter after each traversal exhausts. Edge weights are ignored.
//
// Complexity: O(n + |E|).
func (g *Graph) ConnectedComponents() []int32 {
	n := g.NumVertices()
	labels := make([]int32, n)
	for i := range labels {
		labels[i] = -1
	}

	queue := make([]int32, 0, n)
	var label int32
	for start := 0; start < n; start++ {
		if labels[start] != -1 {
			continue
		}

		queue = queue[:0]
		queue = append(queue, int32(start))
		labels[start] = label

		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			neighbors, _ := g.Edges(v)
			for _, u := range neighbors {
				if labels[u] == -1 {
					labels[u] = label
					queue = append(queue, u)
				}
			}
		}

		label++
	}

	return labels
}

// LargestComponent returns the label of the largest connected component
// (ties broken by lowest label) and its vertex count. Used by vfps to
// choose a deterministic initial seed.
//
// Complexity: O(n + |E|).
func (g *Graph) LargestComponent() (label int32, size int) {
	labels := g.ConnectedComponents()
	counts := map[int32]int{}
	for _, l := range labels {
		counts[l]++
	}

	best := int32(-1)
	bestSize := -1
	for l := int32(0); int(l) < len(counts); l++ {
		c := counts[l]
		if c > bestSize {
			bestSize = c
			best = l
		}
	}
	return best, bestSize
}

// FirstVertexInComponent returns the lowest-indexed vertex whose label
// equals component.
func (g *Graph) FirstVertexInComponent(labels []int32, component int32) int32 {
	for i, l := range labels {
		if l == component {
			return int32(i)
		}
	}
	return -1
}
