package element

import (
	"fmt"
	"strings"
)

// Bipartition is a set partition of [0, 2n), stored as a lookup table:
// blocks[i] is the index of the block containing point i. The table is
// normalised so that block indices appear in increasing order of first
// use. Points [0, n) are the "left" points, [n, 2n) the "right" points;
// the product glues the right points of the first factor to the left
// points of the second and reads off the induced partition.
type Bipartition struct {
	blocks []int
}

// NewBipartition builds a bipartition of degree n from a lookup table of
// length 2n. Returns ErrBadBlocks unless the table is normalised.
// Complexity: O(n).
func NewBipartition(blocks []int) (*Bipartition, error) {
	if len(blocks) == 0 || len(blocks)%2 != 0 {
		return nil, fmt.Errorf("NewBipartition: table length %d: %w", len(blocks), ErrBadShape)
	}
	next := 0
	for i, b := range blocks {
		if b < 0 || b > next {
			return nil, fmt.Errorf("NewBipartition: blocks[%d]=%d: %w", i, b, ErrBadBlocks)
		}
		if b == next {
			next++
		}
	}
	bl := make([]int, len(blocks))
	copy(bl, blocks)

	return &Bipartition{blocks: bl}, nil
}

// Block returns the block index of point i.
// Precondition: 0 ≤ i < 2·Degree().
func (b *Bipartition) Block(i int) int {
	return b.blocks[i]
}

// NrBlocks returns the number of blocks.
// Complexity: O(n).
func (b *Bipartition) NrBlocks() int {
	max := 0
	for _, v := range b.blocks {
		if v > max {
			max = v
		}
	}

	return max + 1
}

// Equal reports equality of the normalised lookup tables.
func (b *Bipartition) Equal(other Element) bool {
	o := other.(*Bipartition)
	if len(b.blocks) != len(o.blocks) {
		return false
	}
	for i, v := range b.blocks {
		if v != o.blocks[i] {
			return false
		}
	}

	return true
}

// Hash folds the lookup table into an FNV-1a accumulator.
func (b *Bipartition) Hash() uint64 {
	h := hashSeed
	for _, v := range b.blocks {
		h = hashStep(h, uint64(v))
	}

	return h
}

// Less orders bipartitions lexicographically by lookup table.
func (b *Bipartition) Less(other Element) bool {
	o := other.(*Bipartition)
	for i := range b.blocks {
		if b.blocks[i] != o.blocks[i] {
			return b.blocks[i] < o.blocks[i]
		}
	}

	return false
}

// Degree returns the number of points n (the table has 2n entries).
func (b *Bipartition) Degree() int {
	return len(b.blocks) / 2
}

// Complexity of one product is near-linear in the table size.
func (b *Bipartition) Complexity() int {
	return 2 * len(b.blocks)
}

// Identity returns the bipartition pairing each left point i with its
// right twin i'.
func (b *Bipartition) Identity() Element {
	n := len(b.blocks) / 2
	blocks := make([]int, 2*n)
	for i := 0; i < n; i++ {
		blocks[i] = i
		blocks[i+n] = i
	}

	return &Bipartition{blocks: blocks}
}

// fuseFind resolves the union-find root of i with path halving.
func fuseFind(fuse []int, i int) int {
	for fuse[i] != i {
		fuse[i] = fuse[fuse[i]]
		i = fuse[i]
	}

	return i
}

// Redefine writes x·y into the receiver. The right points of x are
// identified with the left points of y via a union-find over the blocks
// of both factors; the result is read off left points of x then right
// points of y, renumbered in first-use order.
// Complexity: O(n α(n)).
func (b *Bipartition) Redefine(x, y Element) {
	xb, yb := x.(*Bipartition), y.(*Bipartition)
	n := len(b.blocks) / 2
	nrx := xb.NrBlocks()
	nry := yb.NrBlocks()

	fuse := make([]int, nrx+nry)
	for i := range fuse {
		fuse[i] = i
	}
	for i := 0; i < n; i++ {
		rx := fuseFind(fuse, xb.blocks[i+n])
		ry := fuseFind(fuse, yb.blocks[i]+nrx)
		if rx != ry {
			fuse[ry] = rx
		}
	}

	tab := make([]int, nrx+nry)
	for i := range tab {
		tab[i] = -1
	}
	next := 0
	for i := 0; i < n; i++ {
		r := fuseFind(fuse, xb.blocks[i])
		if tab[r] == -1 {
			tab[r] = next
			next++
		}
		b.blocks[i] = tab[r]
	}
	for i := 0; i < n; i++ {
		r := fuseFind(fuse, yb.blocks[i+n]+nrx)
		if tab[r] == -1 {
			tab[r] = next
			next++
		}
		b.blocks[i+n] = tab[r]
	}
}

// Copy returns a detached deep copy.
func (b *Bipartition) Copy() Element {
	blocks := make([]int, len(b.blocks))
	copy(blocks, b.blocks)

	return &Bipartition{blocks: blocks}
}

// String implements fmt.Stringer.
func (b *Bipartition) String() string {
	parts := make([]string, len(b.blocks))
	for i, v := range b.blocks {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "Bipartition([" + strings.Join(parts, ", ") + "])"
}
