package cayley

// SCCs partitions the nodes into strongly connected components:
//   - ID maps each node to its component index.
//   - Comps lists the nodes of each component.
//
// Components come out in reverse topological order: every edge leaving
// a component points to one with a smaller index.
type SCCs struct {
	ID    []int
	Comps [][]int
}

// NrComponents returns the number of components.
func (c *SCCs) NrComponents() int {
	return len(c.Comps)
}

// StronglyConnected computes the strongly connected components with an
// iterative Tarjan walk. On the right Cayley graph of a finite
// semigroup the components are exactly the R-classes; on the left
// graph, the L-classes.
// Complexity: O(nodes·labels).
func StronglyConnected(g *Graph) *SCCs {
	n, k := g.NrNodes(), g.NrLabels()
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for v := 0; v < n; v++ {
		index[v] = Undefined
	}

	sc := &SCCs{ID: make([]int, n)}
	next := 0
	var stack []int
	var frames []frame

	for root := 0; root < n; root++ {
		if index[root] != Undefined {
			continue
		}
		frames = append(frames[:0], frame{node: root})
		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			v := top.node
			if top.label == 0 {
				index[v] = next
				low[v] = next
				next++
				stack = append(stack, v)
				onStack[v] = true
			}

			descended := false
			for top.label < k {
				w := g.table.Get(v, top.label)
				top.label++
				if w == Undefined {
					continue
				}
				if index[w] == Undefined {
					frames = append(frames, frame{node: w})
					descended = true

					break
				}
				if onStack[w] && index[w] < low[v] {
					low[v] = index[w]
				}
			}
			if descended {
				continue
			}

			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				p := frames[len(frames)-1].node
				if low[v] < low[p] {
					low[p] = low[v]
				}
			}
			if low[v] == index[v] {
				var comp []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					sc.ID[w] = len(sc.Comps)
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				sc.Comps = append(sc.Comps, comp)
			}
		}
	}

	return sc
}
