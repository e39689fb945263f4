package element

import (
	"fmt"
	"sort"
	"strings"
)

// PBR is a partitioned binary relation on [0, 2n): a digraph on n left
// vertices [0, n) and n right vertices [n, 2n), stored as sorted
// adjacency lists. The product x·y glues the right vertices of x to the
// left vertices of y and keeps every edge realised by an alternating
// path through the glued middle layer.
type PBR struct {
	adj [][]int
}

// NewPBR builds a PBR of degree n from 2n adjacency lists. Lists are
// copied, sorted and deduplicated; vertices outside [0, 2n) yield
// ErrBadAdjacency.
// Complexity: O(E log E).
func NewPBR(adj [][]int) (*PBR, error) {
	if len(adj) == 0 || len(adj)%2 != 0 {
		return nil, fmt.Errorf("NewPBR: %d adjacency lists: %w", len(adj), ErrBadShape)
	}
	out := make([][]int, len(adj))
	for i, row := range adj {
		seen := make(map[int]struct{}, len(row))
		cp := make([]int, 0, len(row))
		for _, v := range row {
			if v < 0 || v >= len(adj) {
				return nil, fmt.Errorf("NewPBR: adj[%d] mentions %d: %w", i, v, ErrBadAdjacency)
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			cp = append(cp, v)
		}
		sort.Ints(cp)
		out[i] = cp
	}

	return &PBR{adj: out}, nil
}

// Adjacency returns a copy of the neighbor list of vertex v.
// Precondition: 0 ≤ v < 2·Degree().
func (p *PBR) Adjacency(v int) []int {
	out := make([]int, len(p.adj[v]))
	copy(out, p.adj[v])

	return out
}

// Equal reports equality of the sorted adjacency lists.
func (p *PBR) Equal(other Element) bool {
	o := other.(*PBR)
	if len(p.adj) != len(o.adj) {
		return false
	}
	for i := range p.adj {
		if len(p.adj[i]) != len(o.adj[i]) {
			return false
		}
		for j := range p.adj[i] {
			if p.adj[i][j] != o.adj[i][j] {
				return false
			}
		}
	}

	return true
}

// Hash folds list lengths and entries into an FNV-1a accumulator.
func (p *PBR) Hash() uint64 {
	h := hashSeed
	for _, row := range p.adj {
		h = hashStep(h, uint64(len(row)))
		for _, v := range row {
			h = hashStep(h, uint64(v))
		}
	}

	return h
}

// Less orders PBRs lexicographically, shorter lists first per vertex.
func (p *PBR) Less(other Element) bool {
	o := other.(*PBR)
	for i := range p.adj {
		if len(p.adj[i]) != len(o.adj[i]) {
			return len(p.adj[i]) < len(o.adj[i])
		}
		for j := range p.adj[i] {
			if p.adj[i][j] != o.adj[i][j] {
				return p.adj[i][j] < o.adj[i][j]
			}
		}
	}

	return false
}

// Degree returns the number of left (equally, right) vertices.
func (p *PBR) Degree() int {
	return len(p.adj) / 2
}

// Complexity of one product is cubic in the vertex count.
func (p *PBR) Complexity() int {
	n := len(p.adj)

	return n * n * n
}

// Identity returns the PBR joining each left vertex i to its right twin
// i+n and vice versa.
func (p *PBR) Identity() Element {
	n := len(p.adj) / 2
	adj := make([][]int, 2*n)
	for i := 0; i < n; i++ {
		adj[i] = []int{i + n}
		adj[i+n] = []int{i}
	}

	return &PBR{adj: adj}
}

// pbrWalk explores the alternating paths realising the product edges.
// Vertices of x in [n, 2n) are glued to vertices of y in [0, n).
type pbrWalk struct {
	n     int
	x, y  *PBR
	xSeen []bool
	ySeen []bool
	out   map[int]struct{}
}

// fromX records result edges reachable from vertex i of x.
func (w *pbrWalk) fromX(i int) {
	if w.xSeen[i] {
		return
	}
	w.xSeen[i] = true
	for _, j := range w.x.adj[i] {
		if j < w.n {
			w.out[j] = struct{}{} // left vertex of the result
		} else {
			w.fromY(j - w.n) // glued: continue inside y
		}
	}
}

// fromY records result edges reachable from vertex i of y.
func (w *pbrWalk) fromY(i int) {
	if w.ySeen[i] {
		return
	}
	w.ySeen[i] = true
	for _, j := range w.y.adj[i] {
		if j >= w.n {
			w.out[j] = struct{}{} // right vertex of the result
		} else {
			w.fromX(j + w.n) // glued: continue inside x
		}
	}
}

// Redefine writes x·y into the receiver: the neighbors of a left vertex
// i are everything reachable from vertex i of x, those of a right vertex
// i everything reachable from vertex i of y, alternating through the
// glued middle layer.
// Complexity: O(n·E).
func (p *PBR) Redefine(x, y Element) {
	xp, yp := x.(*PBR), y.(*PBR)
	n := len(p.adj) / 2
	for v := 0; v < 2*n; v++ {
		w := &pbrWalk{
			n:     n,
			x:     xp,
			y:     yp,
			xSeen: make([]bool, 2*n),
			ySeen: make([]bool, 2*n),
			out:   make(map[int]struct{}),
		}
		if v < n {
			w.fromX(v)
		} else {
			w.fromY(v)
		}
		row := make([]int, 0, len(w.out))
		for u := range w.out {
			row = append(row, u)
		}
		sort.Ints(row)
		p.adj[v] = row
	}
}

// Copy returns a detached deep copy.
func (p *PBR) Copy() Element {
	adj := make([][]int, len(p.adj))
	for i, row := range p.adj {
		adj[i] = make([]int, len(row))
		copy(adj[i], row)
	}

	return &PBR{adj: adj}
}

// String implements fmt.Stringer.
func (p *PBR) String() string {
	parts := make([]string, len(p.adj))
	for i, row := range p.adj {
		inner := make([]string, len(row))
		for j, v := range row {
			inner[j] = fmt.Sprintf("%d", v)
		}
		parts[i] = "{" + strings.Join(inner, ", ") + "}"
	}

	return "PBR([" + strings.Join(parts, ", ") + "])"
}
