package semigroup

import (
	"fmt"

	"github.com/katalvlaran/froipin/element"
)

// MinimalFactorisation returns the short-lex minimal word over generator
// letters whose product is the element at position p, enumerating on
// demand until p is known.
func (s *Semigroup) MinimalFactorisation(p int) ([]int, error) {
	if p >= len(s.elements) {
		s.Enumerate(p + 1)
	}
	if err := s.checkPos(p, "minimal factorisation"); err != nil {
		return nil, err
	}

	w := make([]int, 0, s.length[p])
	for q := p; q != Undefined; q = s.suffix[q] {
		w = append(w, s.first[q])
	}

	return w, nil
}

// Factorisation returns a word over generator letters whose product is
// the element at position p. Currently always the minimal word.
func (s *Semigroup) Factorisation(p int) ([]int, error) {
	return s.MinimalFactorisation(p)
}

// MinimalFactorisationElement returns the minimal word of x, enumerating
// until x is found; ErrNotMember when x does not belong to the
// semigroup.
func (s *Semigroup) MinimalFactorisationElement(x element.Element) ([]int, error) {
	p := s.Position(x)
	if p == Undefined {
		return nil, fmt.Errorf("semigroup: minimal factorisation: %w", ErrNotMember)
	}

	return s.MinimalFactorisation(p)
}

// ResetNextRelation rewinds the rule stream to its beginning.
func (s *Semigroup) ResetNextRelation() {
	s.relationPos = Undefined
	s.relationGen = 0
}

// NextRelation writes the next defining rule into rel, reusing its
// backing storage. Duplicate generator rules come first as pairs
// (letter, earlier letter); then triples (p, a, q) meaning "the word of
// position p followed by letter a equals the word of position q", in
// discovery order. An empty slice signals exhaustion. Enumerates fully.
//
// Exactly NrRules() rules are produced between a reset and exhaustion.
func (s *Semigroup) NextRelation(rel *[]int) {
	s.EnumerateAll()
	*rel = (*rel)[:0]

	if s.relationPos == Undefined {
		if s.relationGen < len(s.dupGens) {
			d := s.dupGens[s.relationGen]
			*rel = append(*rel, d[0], d[1])
			s.relationGen++

			return
		}
		s.relationPos = 0
		s.relationGen = 0
	}

	for s.relationPos < len(s.enumOrder) {
		p := s.enumOrder[s.relationPos]
		for s.relationGen < len(s.gens) {
			a := s.relationGen
			s.relationGen++
			if !s.reduced.Get(p, a) && (s.length[p] == 1 || s.reduced.Get(s.suffix[p], a)) {
				*rel = append(*rel, p, a, s.right.Get(p, a))

				return
			}
		}
		s.relationGen = 0
		s.relationPos++
	}
}
