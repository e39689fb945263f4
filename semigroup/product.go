package semigroup

import (
	"fmt"

	"github.com/katalvlaran/froipin/recvec"
)

// RightCayleyTable returns a deep copy of the right Cayley table,
// position × letter, after full enumeration.
func (s *Semigroup) RightCayleyTable() *recvec.RecVec[int] {
	s.EnumerateAll()

	return s.right.Clone()
}

// LeftCayleyTable returns a deep copy of the left Cayley table,
// position × letter, after full enumeration.
func (s *Semigroup) LeftCayleyTable() *recvec.RecVec[int] {
	s.EnumerateAll()

	return s.left.Clone()
}

// Right returns the position of elements[p]·gens[a] from the right
// Cayley table. Enumerates fully so every row is valid.
func (s *Semigroup) Right(p, a int) (int, error) {
	s.EnumerateAll()
	if err := s.checkPos(p, "right"); err != nil {
		return Undefined, err
	}
	if a < 0 || a >= len(s.gens) {
		return Undefined, fmt.Errorf("semigroup: right: %w (letter %d of %d)",
			ErrIndexOutOfBounds, a, len(s.gens))
	}

	return s.right.Get(p, a), nil
}

// Left returns the position of gens[a]·elements[p] from the left Cayley
// table. Enumerates fully so every row is valid.
func (s *Semigroup) Left(p, a int) (int, error) {
	s.EnumerateAll()
	if err := s.checkPos(p, "left"); err != nil {
		return Undefined, err
	}
	if a < 0 || a >= len(s.gens) {
		return Undefined, fmt.Errorf("semigroup: left: %w (letter %d of %d)",
			ErrIndexOutOfBounds, a, len(s.gens))
	}

	return s.left.Get(p, a), nil
}

// ProductByReduction returns the position of elements[i]·elements[j]
// without multiplying any element: the shorter word of the two is
// replayed letter by letter through the Cayley tables. Enumerates fully.
// Complexity: O(min word length) table lookups.
func (s *Semigroup) ProductByReduction(i, j int) (int, error) {
	s.EnumerateAll()
	if err := s.checkPos(i, "product by reduction"); err != nil {
		return Undefined, err
	}
	if err := s.checkPos(j, "product by reduction"); err != nil {
		return Undefined, err
	}

	return s.productByReduction(i, j), nil
}

// productByReduction is the unchecked table walk. All rows must be
// valid; read-only, safe for concurrent use after full enumeration.
func (s *Semigroup) productByReduction(i, j int) int {
	if s.length[i] <= s.length[j] {
		for i != Undefined {
			j = s.left.Get(j, s.final[i])
			i = s.prefix[i]
		}

		return j
	}
	for j != Undefined {
		i = s.right.Get(i, s.first[j])
		j = s.suffix[j]
	}

	return i
}

// FastProduct returns the position of elements[i]·elements[j], choosing
// between the table walk and one real multiplication by comparing the
// word lengths against the product cost of the element type.
func (s *Semigroup) FastProduct(i, j int) (int, error) {
	s.EnumerateAll()
	if err := s.checkPos(i, "fast product"); err != nil {
		return Undefined, err
	}
	if err := s.checkPos(j, "fast product"); err != nil {
		return Undefined, err
	}

	if s.length[i] < 2*s.tmp.Complexity() || s.length[j] < 2*s.tmp.Complexity() {
		return s.productByReduction(i, j), nil
	}
	s.tmp.Redefine(s.elements[i], s.elements[j])

	return s.find(s.tmp), nil
}

// WordToPos evaluates a word over generator letters to the position of
// its product. The word must be non-empty and every letter must be a
// valid generator index. Enumerates fully.
func (s *Semigroup) WordToPos(w []int) (int, error) {
	if len(w) == 0 {
		return Undefined, fmt.Errorf("semigroup: word to pos: %w (empty word)",
			ErrIndexOutOfBounds)
	}
	for _, a := range w {
		if a < 0 || a >= len(s.gens) {
			return Undefined, fmt.Errorf("semigroup: word to pos: %w (letter %d of %d)",
				ErrIndexOutOfBounds, a, len(s.gens))
		}
	}
	s.EnumerateAll()

	p := s.letterToPos[w[0]]
	for _, a := range w[1:] {
		q, err := s.FastProduct(p, s.letterToPos[a])
		if err != nil {
			return Undefined, err
		}
		p = q
	}

	return p, nil
}
