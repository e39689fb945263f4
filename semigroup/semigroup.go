package semigroup

import (
	"fmt"

	"github.com/katalvlaran/froipin/element"
	"github.com/katalvlaran/froipin/recvec"
)

// Semigroup is the enumeration engine for one finitely generated
// semigroup. Construct with New; the zero value is not usable.
//
// Positions are stable: once an element receives a position it keeps it
// for the lifetime of the engine, across further Enumerate calls and
// across AddGenerators/Closure. The breadth-first discovery order is
// kept separately (enumOrder), because adding generators re-discovers
// old elements in a new order.
type Semigroup struct {
	opts Options

	gens        []element.Element // one per letter, duplicates included
	letterToPos []int             // letter → position of that generator
	dupGens     [][2]int          // (letter, earlier letter) duplicate pairs
	degree      int
	id          element.Element // identity of the common degree
	foundOne    bool
	posOne      int

	elements []element.Element // position → element
	posOf    map[uint64][]int  // element hash → candidate positions

	first  []int // position → first letter of its minimal word
	final  []int // position → final letter of its minimal word
	prefix []int // position → position of the minimal word minus final letter
	suffix []int // position → position of the minimal word minus first letter
	length []int // position → minimal word length

	multiplied []bool              // position → right row fully computed
	right      *recvec.RecVec[int] // right Cayley table, position × letter
	left       *recvec.RecVec[int] // left Cayley table, position × letter
	reduced    *recvec.BitRecVec   // (position, letter) → product was a new element

	enumOrder []int // breadth-first discovery order of positions
	lenindex  []int // lenindex[w] = first enumOrder index of words of length w+1
	cursor    int   // next enumOrder index to multiply
	wordlen   int   // current class: words of length wordlen+1 are being multiplied

	nrrules int
	tmp     element.Element // scratch product

	relationPos int // enumOrder index of the rule stream, Undefined while streaming duplicates
	relationGen int // letter cursor of the rule stream

	sortedOrder []int // positions sorted by element order, nil until built
	sortedRank  []int // position → index in sortedOrder

	idemFound bool
	idemList  []int  // idempotent positions, sorted
	isIdem    []bool // position → idempotency
}

// New builds the engine for the semigroup generated by gens. The
// generators are deep-copied; duplicates collapse onto one position and
// are remembered as defining rules. Nothing is enumerated yet beyond
// the generators themselves.
//
// Returns ErrNoGenerators for an empty slice, ErrDegreeMismatch when
// the generators disagree on degree, and ErrOptionViolation for
// unusable option values.
// Complexity: O(k·degree) for k generators.
func New(gens []element.Element, opts ...Option) (*Semigroup, error) {
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("semigroup: new: %w", err)
	}

	deg := gens[0].Degree()
	for _, g := range gens[1:] {
		if g.Degree() != deg {
			return nil, fmt.Errorf("semigroup: new: %w (got %d and %d)",
				ErrDegreeMismatch, deg, g.Degree())
		}
	}

	s := &Semigroup{
		opts:        o,
		degree:      deg,
		id:          gens[0].Identity(),
		posOne:      Undefined,
		posOf:       make(map[uint64][]int),
		right:       recvec.New(len(gens), Undefined),
		left:        recvec.New(len(gens), Undefined),
		reduced:     recvec.NewBit(len(gens)),
		relationPos: Undefined,
	}
	s.tmp = s.id.Copy()

	for a, g := range gens {
		x := g.Copy()
		s.gens = append(s.gens, x)

		if p := s.find(x); p != Undefined {
			s.letterToPos = append(s.letterToPos, p)
			s.dupGens = append(s.dupGens, [2]int{a, s.first[p]})
			s.nrrules++

			continue
		}
		s.letterToPos = append(s.letterToPos, s.appendGenerator(x, a))
	}

	s.lenindex = []int{0, len(s.enumOrder)}

	return s, nil
}

// appendGenerator installs x as a fresh length-1 position for letter a
// and returns the position.
func (s *Semigroup) appendGenerator(x element.Element, a int) int {
	p := len(s.elements)
	s.elements = append(s.elements, x)
	s.posOf[x.Hash()] = append(s.posOf[x.Hash()], p)

	s.first = append(s.first, a)
	s.final = append(s.final, a)
	s.prefix = append(s.prefix, Undefined)
	s.suffix = append(s.suffix, Undefined)
	s.length = append(s.length, 1)

	s.multiplied = append(s.multiplied, false)
	s.right.AppendRow()
	s.left.AppendRow()
	s.reduced.AppendRow()

	s.enumOrder = append(s.enumOrder, p)
	s.checkOne(x, p)

	return p
}

// find returns the position of an element equal to x, or Undefined.
func (s *Semigroup) find(x element.Element) int {
	for _, p := range s.posOf[x.Hash()] {
		if s.elements[p].Equal(x) {
			return p
		}
	}

	return Undefined
}

// checkOne records the position of the identity the first time it is seen.
func (s *Semigroup) checkOne(x element.Element, p int) {
	if !s.foundOne && x.Equal(s.id) {
		s.posOne = p
		s.foundOne = true
	}
}

// invalidateDerived drops the caches that a structural change (new
// generators) makes stale.
func (s *Semigroup) invalidateDerived() {
	s.sortedOrder = nil
	s.sortedRank = nil
	s.idemFound = false
	s.idemList = nil
	s.isIdem = nil
	s.ResetNextRelation()
}

// SetBatchSize adjusts the soft target of new elements per Enumerate
// call. Values below 1 return ErrOptionViolation.
func (s *Semigroup) SetBatchSize(n int) error {
	if n < 1 {
		return fmt.Errorf("semigroup: set batch size: %w", ErrOptionViolation)
	}
	s.opts.BatchSize = n

	return nil
}

// SetMaxThreads adjusts the goroutine count of the idempotent search.
// Values below 1 return ErrOptionViolation.
func (s *Semigroup) SetMaxThreads(n int) error {
	if n < 1 {
		return fmt.Errorf("semigroup: set max threads: %w", ErrOptionViolation)
	}
	s.opts.MaxThreads = n

	return nil
}

// SetReport toggles the per-class progress log line.
func (s *Semigroup) SetReport(on bool) {
	s.opts.Reporting = on
}

// Reserve grows the internal tables to hold at least n elements without
// further reallocation.
func (s *Semigroup) Reserve(n int) {
	s.right.Reserve(n)
	s.left.Reserve(n)
}

// Copy returns a deep copy of the engine in its current state of
// enumeration. The copy shares no mutable state with the receiver.
// Complexity: O(n·k + n·copy cost).
func (s *Semigroup) Copy() *Semigroup {
	c := &Semigroup{
		opts:        s.opts,
		letterToPos: append([]int(nil), s.letterToPos...),
		dupGens:     append([][2]int(nil), s.dupGens...),
		degree:      s.degree,
		id:          s.id.Copy(),
		foundOne:    s.foundOne,
		posOne:      s.posOne,
		posOf:       make(map[uint64][]int, len(s.posOf)),
		first:       append([]int(nil), s.first...),
		final:       append([]int(nil), s.final...),
		prefix:      append([]int(nil), s.prefix...),
		suffix:      append([]int(nil), s.suffix...),
		length:      append([]int(nil), s.length...),
		multiplied:  append([]bool(nil), s.multiplied...),
		right:       s.right.Clone(),
		left:        s.left.Clone(),
		reduced:     s.reduced.Clone(),
		enumOrder:   append([]int(nil), s.enumOrder...),
		lenindex:    append([]int(nil), s.lenindex...),
		cursor:      s.cursor,
		wordlen:     s.wordlen,
		nrrules:     s.nrrules,
		relationPos: Undefined,
	}
	c.tmp = c.id.Copy()

	c.gens = make([]element.Element, len(s.gens))
	for a, g := range s.gens {
		c.gens[a] = g.Copy()
	}
	c.elements = make([]element.Element, len(s.elements))
	for p, e := range s.elements {
		c.elements[p] = e.Copy()
	}
	for h, ps := range s.posOf {
		c.posOf[h] = append([]int(nil), ps...)
	}

	return c
}
