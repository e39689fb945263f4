package semigroup

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/froipin/element"
)

// NrIdempotents returns the number of idempotent elements. Enumerates
// fully and caches the search.
func (s *Semigroup) NrIdempotents() int {
	s.findIdempotents()

	return len(s.idemList)
}

// IsIdempotent reports whether the element at position p squares to
// itself. Enumerates fully.
func (s *Semigroup) IsIdempotent(p int) (bool, error) {
	s.findIdempotents()
	if err := s.checkPos(p, "is idempotent"); err != nil {
		return false, err
	}

	return s.isIdem[p], nil
}

// Idempotents returns the positions of all idempotents in increasing
// order. The returned slice is a copy. Enumerates fully.
func (s *Semigroup) Idempotents() []int {
	s.findIdempotents()

	return append([]int(nil), s.idemList...)
}

// findIdempotents scans every position once, fanned out over MaxThreads
// goroutines. Each worker owns a scratch element and a local result
// slice; results merge after the group joins, so no shared state is
// written concurrently. Short words square through the Cayley tables,
// long words by one real multiplication.
func (s *Semigroup) findIdempotents() {
	if s.idemFound {
		return
	}
	s.EnumerateAll()

	n := len(s.elements)
	workers := s.opts.MaxThreads
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	locals := make([][]int, workers)

	var g errgroup.Group
	for t := 0; t < workers; t++ {
		lo := t * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		out := &locals[t]
		g.Go(func() error {
			scratch := s.id.Copy()
			for p := lo; p < hi; p++ {
				if s.squaresToSelf(p, scratch) {
					*out = append(*out, p)
				}
			}

			return nil
		})
	}
	_ = g.Wait()

	s.isIdem = make([]bool, n)
	for _, local := range locals {
		for _, p := range local {
			s.isIdem[p] = true
			s.idemList = append(s.idemList, p)
		}
	}
	sort.Ints(s.idemList)
	s.idemFound = true
}

// squaresToSelf reports p·p == p using only reads of the enumerated
// structure and the caller's scratch element.
func (s *Semigroup) squaresToSelf(p int, scratch element.Element) bool {
	if 2*s.length[p] < scratch.Complexity() {
		return s.productByReduction(p, p) == p
	}
	scratch.Redefine(s.elements[p], s.elements[p])

	return scratch.Equal(s.elements[p])
}
