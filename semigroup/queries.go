package semigroup

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/froipin/element"
)

// Size returns the order of the semigroup, enumerating it fully first.
func (s *Semigroup) Size() int {
	s.EnumerateAll()

	return len(s.elements)
}

// CurrentSize returns the number of elements found so far, without
// enumerating.
func (s *Semigroup) CurrentSize() int {
	return len(s.elements)
}

// Degree returns the common degree of the elements.
func (s *Semigroup) Degree() int {
	return s.degree
}

// NrGenerators returns the number of generators, duplicates included.
func (s *Semigroup) NrGenerators() int {
	return len(s.gens)
}

// IsBegun reports whether at least every generator has been multiplied.
func (s *Semigroup) IsBegun() bool {
	return s.cursor >= s.lenindex[1]
}

// IsDone reports whether the semigroup is fully enumerated.
func (s *Semigroup) IsDone() bool {
	return s.cursor == len(s.enumOrder)
}

// CurrentMaxWordLength returns the maximal minimal word length among the
// elements found so far, without enumerating.
func (s *Semigroup) CurrentMaxWordLength() int {
	switch {
	case s.IsDone():
		return len(s.lenindex) - 2
	case len(s.elements) > s.lenindex[len(s.lenindex)-1]:
		return len(s.lenindex)
	default:
		return len(s.lenindex) - 1
	}
}

// NrRules returns the number of defining rules, enumerating fully first.
func (s *Semigroup) NrRules() int {
	s.EnumerateAll()

	return s.nrrules
}

// CurrentNrRules returns the number of rules found so far, without
// enumerating.
func (s *Semigroup) CurrentNrRules() int {
	return s.nrrules
}

// LetterToPos returns the position of the generator behind letter a.
func (s *Semigroup) LetterToPos(a int) (int, error) {
	if a < 0 || a >= len(s.gens) {
		return Undefined, fmt.Errorf("semigroup: letter to pos: %w (letter %d of %d)",
			ErrIndexOutOfBounds, a, len(s.gens))
	}

	return s.letterToPos[a], nil
}

// Generator returns a copy of the generator behind letter a.
func (s *Semigroup) Generator(a int) (element.Element, error) {
	if a < 0 || a >= len(s.gens) {
		return nil, fmt.Errorf("semigroup: generator: %w (letter %d of %d)",
			ErrIndexOutOfBounds, a, len(s.gens))
	}

	return s.gens[a].Copy(), nil
}

// FirstLetter returns the first letter of the minimal word of position p.
// p must already be known (p < CurrentSize).
func (s *Semigroup) FirstLetter(p int) (int, error) {
	if err := s.checkPos(p, "first letter"); err != nil {
		return Undefined, err
	}

	return s.first[p], nil
}

// FinalLetter returns the final letter of the minimal word of position p.
func (s *Semigroup) FinalLetter(p int) (int, error) {
	if err := s.checkPos(p, "final letter"); err != nil {
		return Undefined, err
	}

	return s.final[p], nil
}

// Prefix returns the position of the minimal word of p minus its final
// letter, or Undefined for a generator.
func (s *Semigroup) Prefix(p int) (int, error) {
	if err := s.checkPos(p, "prefix"); err != nil {
		return Undefined, err
	}

	return s.prefix[p], nil
}

// Suffix returns the position of the minimal word of p minus its first
// letter, or Undefined for a generator.
func (s *Semigroup) Suffix(p int) (int, error) {
	if err := s.checkPos(p, "suffix"); err != nil {
		return Undefined, err
	}

	return s.suffix[p], nil
}

// CurrentLength returns the minimal word length of position p, or
// Undefined when p has not been found yet. Never enumerates.
func (s *Semigroup) CurrentLength(p int) int {
	if p < 0 || p >= len(s.elements) {
		return Undefined
	}

	return s.length[p]
}

// Length returns the minimal word length of position p, enumerating on
// demand until p is known.
func (s *Semigroup) Length(p int) (int, error) {
	if p >= len(s.elements) {
		s.Enumerate(p + 1)
	}
	if err := s.checkPos(p, "length"); err != nil {
		return Undefined, err
	}

	return s.length[p], nil
}

// At returns a copy of the element at position p, enumerating on demand.
func (s *Semigroup) At(p int) (element.Element, error) {
	if p >= len(s.elements) {
		s.Enumerate(p + 1)
	}
	if err := s.checkPos(p, "at"); err != nil {
		return nil, err
	}

	return s.elements[p].Copy(), nil
}

// Position returns the position of x, enumerating until x is found or
// the semigroup is exhausted; Undefined when x is not a member.
func (s *Semigroup) Position(x element.Element) int {
	if x.Degree() != s.degree {
		return Undefined
	}
	for {
		if p := s.find(x); p != Undefined {
			return p
		}
		if s.IsDone() {
			return Undefined
		}
		s.Enumerate(len(s.elements) + 1)
	}
}

// CurrentPosition returns the position of x among the elements found so
// far, or Undefined. Never enumerates.
func (s *Semigroup) CurrentPosition(x element.Element) int {
	if x.Degree() != s.degree {
		return Undefined
	}

	return s.find(x)
}

// TestMembership reports whether x belongs to the semigroup, enumerating
// as needed.
func (s *Semigroup) TestMembership(x element.Element) bool {
	return s.Position(x) != Undefined
}

// SortedAt returns a copy of the i-th element in the sorted order of the
// element type. Enumerates fully.
func (s *Semigroup) SortedAt(i int) (element.Element, error) {
	s.buildSorted()
	if i < 0 || i >= len(s.sortedOrder) {
		return nil, fmt.Errorf("semigroup: sorted at: %w (index %d of %d)",
			ErrIndexOutOfBounds, i, len(s.sortedOrder))
	}

	return s.elements[s.sortedOrder[i]].Copy(), nil
}

// SortedPosition returns the rank of x in the sorted order, or Undefined
// when x is not a member. Enumerates fully.
func (s *Semigroup) SortedPosition(x element.Element) int {
	s.buildSorted()
	p := s.CurrentPosition(x)
	if p == Undefined {
		return Undefined
	}

	return s.sortedRank[p]
}

// buildSorted materializes the sorted view lazily.
func (s *Semigroup) buildSorted() {
	if s.sortedOrder != nil {
		return
	}
	s.EnumerateAll()

	s.sortedOrder = make([]int, len(s.elements))
	for p := range s.sortedOrder {
		s.sortedOrder[p] = p
	}
	sort.Slice(s.sortedOrder, func(a, b int) bool {
		return s.elements[s.sortedOrder[a]].Less(s.elements[s.sortedOrder[b]])
	})

	s.sortedRank = make([]int, len(s.elements))
	for i, p := range s.sortedOrder {
		s.sortedRank[p] = i
	}
}

// checkPos validates a known position.
func (s *Semigroup) checkPos(p int, op string) error {
	if p < 0 || p >= len(s.elements) {
		return fmt.Errorf("semigroup: %s: %w (position %d of %d)",
			op, ErrIndexOutOfBounds, p, len(s.elements))
	}

	return nil
}
