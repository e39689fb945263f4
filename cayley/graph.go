package cayley

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/froipin/recvec"
	"github.com/katalvlaran/froipin/semigroup"
)

// Sentinel errors for graph walks.
var (
	// ErrNodeOutOfBounds indicates a node index outside [0, NrNodes()).
	ErrNodeOutOfBounds = errors.New("cayley: node out of bounds")

	// ErrLabelOutOfBounds indicates an edge label outside [0, NrLabels()).
	ErrLabelOutOfBounds = errors.New("cayley: label out of bounds")
)

// Undefined marks a missing edge target.
const Undefined = semigroup.Undefined

// Graph is a finite digraph with constant out-degree: every node has
// exactly one (possibly undefined) edge per label. Construct with
// RightGraph, LeftGraph or NewGraph; the zero value is not usable.
type Graph struct {
	table *recvec.RecVec[int]
}

// NewGraph wraps a node × label target table as a digraph. The table is
// taken over by the graph; do not mutate it afterwards.
func NewGraph(table *recvec.RecVec[int]) *Graph {
	return &Graph{table: table}
}

// RightGraph snapshots the right Cayley graph of S, enumerating it
// fully first. Node p has the edge p → p·a for every letter a.
func RightGraph(s *semigroup.Semigroup) *Graph {
	return &Graph{table: s.RightCayleyTable()}
}

// LeftGraph snapshots the left Cayley graph of S, enumerating it fully
// first. Node p has the edge p → a·p for every letter a.
func LeftGraph(s *semigroup.Semigroup) *Graph {
	return &Graph{table: s.LeftCayleyTable()}
}

// NrNodes returns the number of nodes.
func (g *Graph) NrNodes() int {
	return g.table.Rows()
}

// NrLabels returns the number of edge labels (the out-degree).
func (g *Graph) NrLabels() int {
	return g.table.Cols()
}

// Neighbor returns the target of the edge labelled a out of node v, or
// Undefined when the edge is missing.
func (g *Graph) Neighbor(v, a int) (int, error) {
	if v < 0 || v >= g.table.Rows() {
		return Undefined, fmt.Errorf("cayley: neighbor: %w (node %d of %d)",
			ErrNodeOutOfBounds, v, g.table.Rows())
	}
	if a < 0 || a >= g.table.Cols() {
		return Undefined, fmt.Errorf("cayley: neighbor: %w (label %d of %d)",
			ErrLabelOutOfBounds, a, g.table.Cols())
	}

	return g.table.Get(v, a), nil
}

// FollowPath replays word label by label from node from and returns the
// node reached, or Undefined as soon as a missing edge cuts the path.
func FollowPath(g *Graph, from int, word []int) (int, error) {
	if from < 0 || from >= g.NrNodes() {
		return Undefined, fmt.Errorf("cayley: follow path: %w (node %d of %d)",
			ErrNodeOutOfBounds, from, g.NrNodes())
	}
	v := from
	for _, a := range word {
		if a < 0 || a >= g.NrLabels() {
			return Undefined, fmt.Errorf("cayley: follow path: %w (label %d of %d)",
				ErrLabelOutOfBounds, a, g.NrLabels())
		}
		v = g.table.Get(v, a)
		if v == Undefined {
			return Undefined, nil
		}
	}

	return v, nil
}

// DFS colours for the iterative walks below.
const (
	white = iota // not visited
	grey         // on the current stack
	black        // fully explored
)

// IsAcyclic reports whether the graph has no nontrivial directed cycle.
// The Cayley graph of any nontrivial finite semigroup is cyclic, so
// this is mostly useful on trimmed subgraphs.
// Complexity: O(nodes·labels).
func IsAcyclic(g *Graph) bool {
	_, ok := TopologicalSort(g)

	return ok
}

// frame is one step of the iterative DFS: a node and the next label to
// branch on.
type frame struct {
	node  int
	label int
}

// TopologicalSort returns the nodes in topological order (every edge
// points from an earlier node to a later one) and true, or nil and
// false when a directed cycle makes the order impossible.
// Complexity: O(nodes·labels).
func TopologicalSort(g *Graph) ([]int, bool) {
	n, k := g.NrNodes(), g.NrLabels()
	colour := make([]byte, n)
	order := make([]int, 0, n)
	var stack []frame

	for root := 0; root < n; root++ {
		if colour[root] != white {
			continue
		}
		stack = append(stack[:0], frame{node: root})
		colour[root] = grey
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.label == k {
				colour[top.node] = black
				order = append(order, top.node)
				stack = stack[:len(stack)-1]

				continue
			}
			w := g.table.Get(top.node, top.label)
			top.label++
			switch {
			case w == Undefined || (w >= 0 && colour[w] == black):
				// nothing to do
			case w == top.node || colour[w] == grey:
				return nil, false
			default:
				colour[w] = grey
				stack = append(stack, frame{node: w})
			}
		}
	}

	// reverse postorder
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, true
}
