package semigroup

import (
	"fmt"

	"github.com/katalvlaran/froipin/element"
	"github.com/katalvlaran/froipin/recvec"
)

// AddGenerators extends the semigroup by the given collection. Elements
// already known keep their positions; an element that was a plain member
// is relabelled as a generator, and a collection element equal to an
// existing generator becomes a duplicate rule.
//
// Everything already multiplied is re-swept: old positions are
// re-discovered in the breadth-first order of the widened alphabet, with
// their word data rewritten, and their rows extended through the new
// letters. Enumeration stops as soon as every previously multiplied
// position has been re-processed; call Size or EnumerateAll to finish.
//
// All collection elements must match the degree of the semigroup.
func (s *Semigroup) AddGenerators(coll []element.Element) error {
	if len(coll) == 0 {
		return nil
	}
	for _, x := range coll {
		if x.Degree() != s.degree {
			return fmt.Errorf("semigroup: add generators: %w (got %d and %d)",
				ErrDegreeMismatch, s.degree, x.Degree())
		}
	}

	oldNrGens := len(s.gens)
	oldNr := len(s.elements)
	nrOldLeft := s.cursor // multiplied positions awaiting the re-sweep

	oldNew := make([]bool, oldNr)
	for _, p := range s.letterToPos {
		oldNew[p] = true
	}

	s.right.AddCols(len(coll))
	s.left.AddCols(len(coll))
	s.reduced = recvec.NewBit(oldNrGens + len(coll))
	s.reduced.AppendRows(oldNr)

	for _, x := range coll {
		a := len(s.gens)
		g := x.Copy()
		s.gens = append(s.gens, g)

		p := s.find(g)
		switch {
		case p == Undefined:
			s.letterToPos = append(s.letterToPos, s.appendGenerator(g, a))
		case p >= oldNr || oldNew[p]:
			s.letterToPos = append(s.letterToPos, p)
			s.dupGens = append(s.dupGens, [2]int{a, s.first[p]})
		default:
			// a plain member promoted to generator
			s.letterToPos = append(s.letterToPos, p)
			s.first[p] = a
			s.final[p] = a
			s.prefix[p] = Undefined
			s.suffix[p] = Undefined
			s.length[p] = 1
			oldNew[p] = true
		}
	}

	// restart discovery from the widened generating set
	s.enumOrder = s.enumOrder[:0]
	seen := make([]bool, len(s.elements))
	for _, p := range s.letterToPos {
		if !seen[p] {
			seen[p] = true
			s.enumOrder = append(s.enumOrder, p)
		}
	}
	s.cursor = 0
	s.wordlen = 0
	s.lenindex = []int{0, len(s.enumOrder)}
	s.nrrules = len(s.dupGens)
	s.invalidateDerived()

	for nrOldLeft > 0 {
		for s.cursor < s.lenindex[s.wordlen+1] && nrOldLeft > 0 {
			i := s.enumOrder[s.cursor]
			b, sfx := s.first[i], s.suffix[i]
			if s.multiplied[i] {
				nrOldLeft--
				for j := 0; j < oldNrGens; j++ {
					k := s.right.Get(i, j)
					if !oldNew[k] {
						s.adoptPosition(k, i, j, b, sfx)
						oldNew[k] = true
					} else if sfx == Undefined || s.reduced.Get(sfx, j) {
						s.nrrules++
					}
				}
				for j := oldNrGens; j < len(s.gens); j++ {
					s.recordProduct(i, j, b, sfx, oldNew, oldNr)
				}
			} else {
				s.multiplied[i] = true
				for j := range s.gens {
					s.recordProduct(i, j, b, sfx, oldNew, oldNr)
				}
			}
			s.cursor++
		}
		s.finishClass()
	}

	return nil
}

// Closure extends the semigroup by the collection elements that are not
// already members, one at a time. Membership tests may enumerate fully.
func (s *Semigroup) Closure(coll []element.Element) error {
	for _, x := range coll {
		if x.Degree() != s.degree {
			return fmt.Errorf("semigroup: closure: %w (got %d and %d)",
				ErrDegreeMismatch, s.degree, x.Degree())
		}
	}
	for _, x := range coll {
		if s.Position(x) == Undefined {
			if err := s.AddGenerators([]element.Element{x}); err != nil {
				return err
			}
		}
	}

	return nil
}

// CopyAddGenerators returns a deep copy of the engine extended by coll;
// the receiver is untouched.
func (s *Semigroup) CopyAddGenerators(coll []element.Element) (*Semigroup, error) {
	c := s.Copy()
	if err := c.AddGenerators(coll); err != nil {
		return nil, err
	}

	return c, nil
}

// CopyClosure returns a deep copy of the engine closed under coll; the
// receiver is untouched.
func (s *Semigroup) CopyClosure(coll []element.Element) (*Semigroup, error) {
	c := s.Copy()
	if err := c.Closure(coll); err != nil {
		return nil, err
	}

	return c, nil
}
