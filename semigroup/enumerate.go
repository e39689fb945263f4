package semigroup

import (
	"context"
	"fmt"

	"github.com/katalvlaran/froipin/report"
)

// EnumerateAll enumerates the whole semigroup. No-op when already done.
func (s *Semigroup) EnumerateAll() {
	s.Enumerate(LimitMax)
}

// Enumerate grows the structure until at least limit elements are known
// or the semigroup is exhausted. A limit below CurrentSize+BatchSize is
// raised to it, so repeated small calls still make batch-sized progress.
// The call returns with the current position fully multiplied; it never
// leaves a half-computed row behind.
func (s *Semigroup) Enumerate(limit int) {
	_ = s.EnumerateContext(context.Background(), limit)
}

// EnumerateContext is Enumerate with cancellation. ctx is polled between
// positions; on cancellation the error wraps ctx.Err() and the engine is
// left in a consistent, resumable state.
func (s *Semigroup) EnumerateContext(ctx context.Context, limit int) error {
	if s.IsDone() || len(s.elements) >= limit {
		return nil
	}
	if limit < len(s.elements)+s.opts.BatchSize {
		limit = len(s.elements) + s.opts.BatchSize
	}

	stop := false
	for s.cursor < len(s.enumOrder) && !stop {
		for s.cursor < s.lenindex[s.wordlen+1] && !stop {
			i := s.enumOrder[s.cursor]
			b, sfx := s.first[i], s.suffix[i]
			s.multiplied[i] = true
			for j := range s.gens {
				s.recordProduct(i, j, b, sfx, nil, 0)
			}
			s.cursor++

			if len(s.elements) >= limit {
				stop = true
			}
			if err := ctx.Err(); err != nil {
				s.finishClass()

				return fmt.Errorf("semigroup: enumerate: %w", err)
			}
		}
		s.finishClass()
	}

	return nil
}

// finishClass closes the current word length class once every one of its
// positions has been multiplied: the left Cayley rows of the class are
// filled in and the next class boundary is recorded.
func (s *Semigroup) finishClass() {
	if s.cursor != s.lenindex[s.wordlen+1] {
		return
	}
	s.expandLeft()
	s.wordlen++
	s.lenindex = append(s.lenindex, len(s.enumOrder))

	if s.opts.Reporting {
		logger := report.Logger()
		logger.Info().
			Int("size", len(s.elements)).
			Int("rules", s.nrrules).
			Int("wordlen", s.wordlen).
			Msg("word length class complete")
	}
}

// recordProduct resolves the product elements[i]·gens[j] and records it
// in the right Cayley table.
//
// When the suffix of position i already reduces under letter j the
// product is read off the tables without multiplying. Otherwise the
// product is computed; a known result becomes a rule, an unknown result
// becomes a new position.
//
// oldNew and oldNr carry the re-sweep state of AddGenerators: a product
// landing on a position below oldNr not yet seen by the new discovery
// order is adopted (its word data rewritten) instead of counted as a
// rule. Plain enumeration passes nil, 0.
func (s *Semigroup) recordProduct(i, j, b, sfx int, oldNew []bool, oldNr int) {
	if s.wordlen != 0 && !s.reduced.Get(sfx, j) {
		r := s.right.Get(sfx, j)
		switch {
		case s.foundOne && r == s.posOne:
			s.right.Set(i, j, s.letterToPos[b])
		case s.prefix[r] != Undefined:
			s.right.Set(i, j, s.right.Get(s.left.Get(s.prefix[r], b), s.final[r]))
		default:
			s.right.Set(i, j, s.right.Get(s.letterToPos[b], s.final[r]))
		}

		return
	}

	s.tmp.Redefine(s.elements[i], s.gens[j])
	q := s.find(s.tmp)
	switch {
	case q == Undefined:
		n := len(s.elements)
		x := s.tmp.Copy()
		s.elements = append(s.elements, x)
		s.posOf[x.Hash()] = append(s.posOf[x.Hash()], n)
		s.first = append(s.first, b)
		s.final = append(s.final, j)
		s.prefix = append(s.prefix, i)
		s.suffix = append(s.suffix, s.suffixOfProduct(j, sfx))
		s.length = append(s.length, s.wordlen+2)
		s.multiplied = append(s.multiplied, false)
		s.right.AppendRow()
		s.left.AppendRow()
		s.reduced.AppendRow()
		s.reduced.Set(i, j, true)
		s.right.Set(i, j, n)
		s.enumOrder = append(s.enumOrder, n)
		s.checkOne(x, n)
	case q < oldNr && !oldNew[q]:
		s.adoptPosition(q, i, j, b, sfx)
		s.right.Set(i, j, q)
		oldNew[q] = true
	default:
		s.right.Set(i, j, q)
		s.nrrules++
	}
}

// suffixOfProduct returns the suffix position of a freshly discovered
// word: its minimal word minus the first letter.
func (s *Semigroup) suffixOfProduct(j, sfx int) int {
	if s.wordlen == 0 {
		return s.letterToPos[j]
	}

	return s.right.Get(sfx, j)
}

// adoptPosition rewrites the word data of position q, first reached as
// elements[i]·gens[j] by the current discovery order, and schedules it.
func (s *Semigroup) adoptPosition(q, i, j, b, sfx int) {
	s.first[q] = b
	s.final[q] = j
	s.prefix[q] = i
	s.suffix[q] = s.suffixOfProduct(j, sfx)
	s.length[q] = s.wordlen + 2
	s.reduced.Set(i, j, true)
	s.enumOrder = append(s.enumOrder, q)
}

// expandLeft fills the left Cayley rows of the class that just closed,
// positions enumOrder[lenindex[wordlen]:cursor].
func (s *Semigroup) expandLeft() {
	if s.wordlen == 0 {
		for c := s.lenindex[0]; c < s.cursor; c++ {
			p := s.enumOrder[c]
			for j := range s.gens {
				s.left.Set(p, j, s.right.Get(s.letterToPos[j], s.final[p]))
			}
		}

		return
	}
	for c := s.lenindex[s.wordlen]; c < s.cursor; c++ {
		p := s.enumOrder[c]
		for j := range s.gens {
			s.left.Set(p, j, s.right.Get(s.left.Get(s.prefix[p], j), s.final[p]))
		}
	}
}
