package semigroup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/froipin/element"
	"github.com/katalvlaran/froipin/semigroup"
)

// mustTransf builds a transformation or fails the test.
func mustTransf(t testing.TB, images []int) *element.Transformation {
	t.Helper()
	x, err := element.NewTransformation(images)
	require.NoError(t, err)

	return x
}

// fullTransfGens returns the five 6-point transformations generating the
// full transformation monoid on six points.
func fullTransfGens(t testing.TB) []element.Element {
	t.Helper()

	return []element.Element{
		mustTransf(t, []int{0, 1, 2, 3, 4, 5}),
		mustTransf(t, []int{1, 0, 2, 3, 4, 5}),
		mustTransf(t, []int{4, 0, 1, 2, 3, 5}),
		mustTransf(t, []int{5, 1, 2, 3, 4, 5}),
		mustTransf(t, []int{1, 1, 2, 3, 4, 5}),
	}
}

// TestSemigroup_NewValidation verifies constructor preconditions.
func TestSemigroup_NewValidation(t *testing.T) {
	_, err := semigroup.New(nil)
	assert.ErrorIs(t, err, semigroup.ErrNoGenerators)

	x := mustTransf(t, []int{0, 1, 0})
	y := mustTransf(t, []int{1, 0})
	_, err = semigroup.New([]element.Element{x, y})
	assert.ErrorIs(t, err, semigroup.ErrDegreeMismatch)

	_, err = semigroup.New([]element.Element{x}, semigroup.WithBatchSize(0))
	assert.ErrorIs(t, err, semigroup.ErrOptionViolation)

	_, err = semigroup.New([]element.Element{x}, semigroup.WithMaxThreads(-1))
	assert.ErrorIs(t, err, semigroup.ErrOptionViolation)
}

// TestSemigroup_TwoTransformations runs the two-element monoid end to
// end.
func TestSemigroup_TwoTransformations(t *testing.T) {
	s, err := semigroup.New([]element.Element{
		mustTransf(t, []int{0, 1, 0}),
		mustTransf(t, []int{0, 1, 2}),
	})
	require.NoError(t, err)

	assert.False(t, s.IsBegun())
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.IsDone())
	assert.Equal(t, 3, s.Degree())
	assert.Equal(t, 2, s.NrGenerators())
	assert.Equal(t, 2, s.NrIdempotents())
	assert.Equal(t, 4, s.NrRules())
	assert.Equal(t, 1, s.CurrentMaxWordLength())
}

// TestSemigroup_PartialPerms runs the degree-11 partial perm pair.
func TestSemigroup_PartialPerms(t *testing.T) {
	x, err := element.NewPartialPerm(
		[]int{0, 1, 2, 3, 5, 6, 9}, []int{9, 7, 3, 5, 4, 2, 1}, 11)
	require.NoError(t, err)
	y, err := element.NewPartialPerm([]int{4, 5, 0}, []int{10, 0, 1}, 11)
	require.NoError(t, err)

	s, err := semigroup.New([]element.Element{x, y})
	require.NoError(t, err)

	assert.Equal(t, 22, s.Size())
	assert.Equal(t, 11, s.Degree())
	assert.Equal(t, 1, s.NrIdempotents())
	assert.Equal(t, 2, s.NrGenerators())
	assert.Equal(t, 9, s.NrRules())
}

// TestSemigroup_DuplicateGenerators verifies that repeated generators
// collapse onto one position and surface as rules.
func TestSemigroup_DuplicateGenerators(t *testing.T) {
	x, err := element.NewBooleanMatInts([][]int{{1, 0, 1}, {0, 1, 0}, {0, 1, 0}})
	require.NoError(t, err)
	zero := func() element.Element {
		z, zerr := element.NewBooleanMatInts([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
		require.NoError(t, zerr)

		return z
	}

	s, err := semigroup.New([]element.Element{x, zero(), zero()})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 2, s.NrIdempotents())
	assert.Equal(t, 3, s.NrGenerators())
	assert.Equal(t, 7, s.NrRules())

	// the duplicate pair leads the rule stream
	var rel []int
	s.ResetNextRelation()
	s.NextRelation(&rel)
	assert.Equal(t, []int{2, 1}, rel, "letter 2 duplicates letter 1")
}

// TestSemigroup_FullTransformationMonoid runs the 7776-element monoid.
func TestSemigroup_FullTransformationMonoid(t *testing.T) {
	s, err := semigroup.New(fullTransfGens(t))
	require.NoError(t, err)

	assert.Equal(t, 7776, s.Size())
	assert.Equal(t, 537, s.NrIdempotents())
	assert.Equal(t, 2459, s.NrRules())
}

// TestSemigroup_TropicalMatrices runs the truncated max-plus pair.
func TestSemigroup_TropicalMatrices(t *testing.T) {
	x, err := element.NewTropicalMaxPlusMatrix([][]int64{
		{22, 21, 0},
		{10, 0, 0},
		{1, 32, 1},
	}, 33)
	require.NoError(t, err)
	y, err := element.NewTropicalMaxPlusMatrix([][]int64{
		{0, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
	}, 33)
	require.NoError(t, err)

	s, err := semigroup.New([]element.Element{x, y})
	require.NoError(t, err)

	assert.Equal(t, 119, s.Size())
	assert.Equal(t, 1, s.NrIdempotents())
	assert.Equal(t, 18, s.NrRules())
}

// TestSemigroup_PBR runs the partitioned binary relation pair.
func TestSemigroup_PBR(t *testing.T) {
	x, err := element.NewPBR([][]int{
		{1}, {4}, {3}, {1}, {0, 2}, {0, 3, 4, 5},
	})
	require.NoError(t, err)
	y, err := element.NewPBR([][]int{
		{1, 2}, {0, 1}, {0, 2, 3}, {0, 1, 2}, {3}, {0, 3, 4, 5},
	})
	require.NoError(t, err)

	s, err := semigroup.New([]element.Element{x, y})
	require.NoError(t, err)

	assert.Equal(t, 30, s.Size())
	assert.Equal(t, 3, s.Degree())
	assert.Equal(t, 22, s.NrIdempotents())
	assert.Equal(t, 11, s.NrRules())
}

// TestSemigroup_Batching verifies the stop-at-batch-boundary semantics
// on the full transformation monoid.
func TestSemigroup_Batching(t *testing.T) {
	s, err := semigroup.New(fullTransfGens(t), semigroup.WithBatchSize(1024))
	require.NoError(t, err)

	e, err := s.At(100)
	require.NoError(t, err)
	want := mustTransf(t, []int{5, 3, 4, 1, 2, 5})
	assert.True(t, e.Equal(want), "At(100) = %v", e)
	assert.Equal(t, 1029, s.CurrentSize())
	assert.Equal(t, 74, s.CurrentNrRules())
	assert.Equal(t, 7, s.CurrentMaxWordLength())
	assert.True(t, s.IsBegun())
	assert.False(t, s.IsDone())

	_, err = s.At(3000)
	require.NoError(t, err)
	assert.Equal(t, 3001, s.CurrentSize())
	assert.Equal(t, 526, s.CurrentNrRules())
	assert.Equal(t, 9, s.CurrentMaxWordLength())

	assert.Equal(t, 7776, s.Size())
	assert.True(t, s.IsDone())
}

// TestSemigroup_PartialEnumerationCounts pins the counters of a
// partially enumerated three-generator monoid.
func TestSemigroup_PartialEnumerationCounts(t *testing.T) {
	gens := fullTransfGens(t)[:3]
	s, err := semigroup.New(gens, semigroup.WithBatchSize(60))
	require.NoError(t, err)
	s.Enumerate(60)

	assert.True(t, s.IsBegun())
	assert.False(t, s.IsDone())
	assert.Equal(t, 63, s.CurrentSize())
	assert.Equal(t, 11, s.CurrentNrRules())
	assert.Equal(t, 7, s.CurrentMaxWordLength())
}

// TestSemigroup_RightTableClosure verifies that every right Cayley edge
// agrees with a real multiplication.
func TestSemigroup_RightTableClosure(t *testing.T) {
	x, err := element.NewPartialPerm(
		[]int{0, 1, 2, 3, 5, 6, 9}, []int{9, 7, 3, 5, 4, 2, 1}, 11)
	require.NoError(t, err)
	y, err := element.NewPartialPerm([]int{4, 5, 0}, []int{10, 0, 1}, 11)
	require.NoError(t, err)
	s, err := semigroup.New([]element.Element{x, y})
	require.NoError(t, err)

	n := s.Size()
	for p := 0; p < n; p++ {
		ep, perr := s.At(p)
		require.NoError(t, perr)
		for a := 0; a < s.NrGenerators(); a++ {
			g, gerr := s.Generator(a)
			require.NoError(t, gerr)
			q, qerr := s.Right(p, a)
			require.NoError(t, qerr)
			eq, eerr := s.At(q)
			require.NoError(t, eerr)

			prod := ep.Copy()
			prod.Redefine(ep, g)
			assert.True(t, prod.Equal(eq), "right(%d,%d) disagrees with the product", p, a)
		}
	}
}

// TestSemigroup_LeftTableClosure verifies the left Cayley edges the
// same way.
func TestSemigroup_LeftTableClosure(t *testing.T) {
	x, err := element.NewBooleanMatInts([][]int{{1, 0, 1}, {0, 1, 0}, {0, 1, 0}})
	require.NoError(t, err)
	y, err := element.NewBooleanMatInts([][]int{{0, 0, 1}, {1, 0, 0}, {1, 1, 0}})
	require.NoError(t, err)
	s, err := semigroup.New([]element.Element{x, y})
	require.NoError(t, err)

	n := s.Size()
	for p := 0; p < n; p++ {
		ep, perr := s.At(p)
		require.NoError(t, perr)
		for a := 0; a < s.NrGenerators(); a++ {
			g, gerr := s.Generator(a)
			require.NoError(t, gerr)
			q, qerr := s.Left(p, a)
			require.NoError(t, qerr)
			eq, eerr := s.At(q)
			require.NoError(t, eerr)

			prod := ep.Copy()
			prod.Redefine(g, ep)
			assert.True(t, prod.Equal(eq), "left(%d,%d) disagrees with the product", p, a)
		}
	}
}

// TestSemigroup_Factorisation verifies that minimal words multiply back
// to their elements and have the recorded length.
func TestSemigroup_Factorisation(t *testing.T) {
	s, err := semigroup.New(fullTransfGens(t))
	require.NoError(t, err)
	n := s.Size()

	for _, p := range []int{0, 4, 100, 1029, n - 1} {
		w, werr := s.MinimalFactorisation(p)
		require.NoError(t, werr)
		l, lerr := s.Length(p)
		require.NoError(t, lerr)
		assert.Len(t, w, l, "word length disagrees with length[%d]", p)

		q, qerr := s.WordToPos(w)
		require.NoError(t, qerr)
		assert.Equal(t, p, q, "word of %d evaluates elsewhere", p)
	}

	_, err = s.MinimalFactorisation(n)
	assert.ErrorIs(t, err, semigroup.ErrIndexOutOfBounds)
}

// TestSemigroup_FactorisationElement verifies the element-keyed variant
// and its ErrNotMember contract.
func TestSemigroup_FactorisationElement(t *testing.T) {
	s, err := semigroup.New(fullTransfGens(t)[:3])
	require.NoError(t, err)

	w, err := s.MinimalFactorisationElement(mustTransf(t, []int{1, 0, 2, 3, 4, 5}))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, w)

	_, err = s.MinimalFactorisationElement(mustTransf(t, []int{1, 1, 2, 3, 4, 5}))
	assert.ErrorIs(t, err, semigroup.ErrNotMember, "a map merging 0 and 1 is not a permutation")
}

// TestSemigroup_PositionAndMembership verifies lookup semantics.
func TestSemigroup_PositionAndMembership(t *testing.T) {
	gens := fullTransfGens(t)[:3]
	s, err := semigroup.New(gens)
	require.NoError(t, err)

	assert.Equal(t, 1, s.CurrentPosition(gens[1]))
	assert.Equal(t, semigroup.Undefined,
		s.CurrentPosition(mustTransf(t, []int{2, 3, 4, 0, 1, 5})), "not found before enumeration")

	assert.True(t, s.TestMembership(mustTransf(t, []int{2, 3, 4, 0, 1, 5})))
	assert.False(t, s.TestMembership(mustTransf(t, []int{0, 0, 0, 0, 0, 0})))
	assert.Equal(t, semigroup.Undefined, s.Position(mustTransf(t, []int{0, 1})),
		"degree mismatch is not a member")
}

// TestSemigroup_SortedView verifies the sorted order and its ranks.
func TestSemigroup_SortedView(t *testing.T) {
	s, err := semigroup.New(fullTransfGens(t)[:3])
	require.NoError(t, err)
	n := s.Size()

	prev, err := s.SortedAt(0)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		cur, serr := s.SortedAt(i)
		require.NoError(t, serr)
		assert.True(t, prev.Less(cur), "sorted order violated at %d", i)
		prev = cur
	}

	for _, p := range []int{0, 1, n / 2, n - 1} {
		e, aerr := s.At(p)
		require.NoError(t, aerr)
		i := s.SortedPosition(e)
		back, serr := s.SortedAt(i)
		require.NoError(t, serr)
		assert.True(t, back.Equal(e), "sorted rank of position %d does not round-trip", p)
	}
}

// TestSemigroup_NextRelationStream verifies the rule stream count and
// that every rule holds in the semigroup.
func TestSemigroup_NextRelationStream(t *testing.T) {
	x, err := element.NewPBR([][]int{
		{1}, {4}, {3}, {1}, {0, 2}, {0, 3, 4, 5},
	})
	require.NoError(t, err)
	y, err := element.NewPBR([][]int{
		{1, 2}, {0, 1}, {0, 2, 3}, {0, 1, 2}, {3}, {0, 3, 4, 5},
	})
	require.NoError(t, err)
	s, err := semigroup.New([]element.Element{x, y})
	require.NoError(t, err)

	var rel []int
	count := 0
	s.ResetNextRelation()
	for s.NextRelation(&rel); len(rel) > 0; s.NextRelation(&rel) {
		count++
		if len(rel) == 2 {
			lp, _ := s.LetterToPos(rel[0])
			rp, _ := s.LetterToPos(rel[1])
			assert.Equal(t, rp, lp, "duplicate letters must share a position")

			continue
		}
		require.Len(t, rel, 3)
		p, a, q := rel[0], rel[1], rel[2]
		ep, _ := s.At(p)
		g, _ := s.Generator(a)
		eq, _ := s.At(q)
		prod := ep.Copy()
		prod.Redefine(ep, g)
		assert.True(t, prod.Equal(eq), "rule (%d,%d,%d) does not hold", p, a, q)
	}
	assert.Equal(t, s.NrRules(), count, "stream length must equal NrRules")

	// a reset replays the stream from the start
	s.ResetNextRelation()
	s.NextRelation(&rel)
	assert.NotEmpty(t, rel)
}

// TestSemigroup_Idempotents verifies idempotent bookkeeping against
// FastProduct.
func TestSemigroup_Idempotents(t *testing.T) {
	x, err := element.NewPartialPerm(
		[]int{0, 1, 2, 3, 5, 6, 9}, []int{9, 7, 3, 5, 4, 2, 1}, 11)
	require.NoError(t, err)
	y, err := element.NewPartialPerm([]int{4, 5, 0}, []int{10, 0, 1}, 11)
	require.NoError(t, err)
	s, err := semigroup.New([]element.Element{x, y}, semigroup.WithMaxThreads(3))
	require.NoError(t, err)

	idem := s.Idempotents()
	assert.Len(t, idem, s.NrIdempotents())
	assert.IsIncreasing(t, idem)

	for p := 0; p < s.Size(); p++ {
		got, ierr := s.IsIdempotent(p)
		require.NoError(t, ierr)
		sq, perr := s.FastProduct(p, p)
		require.NoError(t, perr)
		assert.Equal(t, sq == p, got, "idempotency of %d disagrees with p·p", p)
	}
}

// TestSemigroup_AddGenerators verifies that growing the generating set
// incrementally lands on the same semigroup.
func TestSemigroup_AddGenerators(t *testing.T) {
	gens := fullTransfGens(t)

	for _, split := range []int{1, 2, 3, 4} {
		s, err := semigroup.New(gens[:split])
		require.NoError(t, err)
		require.NoError(t, s.AddGenerators(gens[split:]))

		assert.Equal(t, 5, s.NrGenerators())
		assert.Equal(t, 7776, s.Size(), "split at %d", split)
		assert.Equal(t, 2459, s.NrRules(), "split at %d", split)
		assert.Equal(t, 537, s.NrIdempotents(), "split at %d", split)
	}
}

// TestSemigroup_AddGeneratorsPartlyEnumerated verifies the re-sweep of
// a half-built structure.
func TestSemigroup_AddGeneratorsPartlyEnumerated(t *testing.T) {
	gens := fullTransfGens(t)
	s, err := semigroup.New(gens[:3], semigroup.WithBatchSize(60))
	require.NoError(t, err)
	s.Enumerate(60)
	require.Equal(t, 63, s.CurrentSize())

	require.NoError(t, s.AddGenerators(gens[3:]))
	assert.True(t, s.IsBegun())
	assert.Equal(t, 5, s.NrGenerators())

	assert.Equal(t, 7776, s.Size())
	assert.Equal(t, 2459, s.NrRules())
	assert.Equal(t, 537, s.NrIdempotents())
}

// TestSemigroup_AddGeneratorsDuplicate verifies that re-adding a known
// generator or member does not grow the semigroup.
func TestSemigroup_AddGeneratorsDuplicate(t *testing.T) {
	gens := fullTransfGens(t)
	s, err := semigroup.New(gens)
	require.NoError(t, err)
	require.Equal(t, 7776, s.Size())

	// a duplicate of letter 1 and a plain member promoted to generator
	member := mustTransf(t, []int{0, 1, 2, 3, 4, 5}).Copy().(*element.Transformation)
	member.Redefine(gens[1], gens[2]) // some product already inside
	require.NoError(t, s.AddGenerators([]element.Element{gens[1], member}))

	assert.Equal(t, 7, s.NrGenerators())
	assert.Equal(t, 7776, s.Size(), "no new elements can appear")
	assert.Equal(t, 537, s.NrIdempotents())

	err = s.AddGenerators([]element.Element{mustTransf(t, []int{0, 1})})
	assert.ErrorIs(t, err, semigroup.ErrDegreeMismatch)
}

// TestSemigroup_Closure verifies that only non-members are adopted.
func TestSemigroup_Closure(t *testing.T) {
	gens := fullTransfGens(t)
	s, err := semigroup.New(gens[:2])
	require.NoError(t, err)

	require.NoError(t, s.Closure(gens[2:]))
	assert.Equal(t, 5, s.NrGenerators())
	assert.Equal(t, 7776, s.Size())
	assert.Equal(t, 2459, s.NrRules())

	// closing under members is a no-op
	require.NoError(t, s.Closure([]element.Element{gens[1]}))
	assert.Equal(t, 5, s.NrGenerators())
}

// TestSemigroup_CopyVariants verifies that the copying growers leave
// the receiver untouched.
func TestSemigroup_CopyVariants(t *testing.T) {
	gens := fullTransfGens(t)
	s, err := semigroup.New(gens[:2])
	require.NoError(t, err)

	u, err := s.CopyAddGenerators(gens[2:])
	require.NoError(t, err)
	assert.Equal(t, 2, s.NrGenerators(), "receiver keeps its generators")
	assert.Equal(t, 7776, u.Size())
	assert.Equal(t, 537, u.NrIdempotents())
	assert.Equal(t, 2459, u.NrRules())

	v, err := s.CopyClosure(gens[2:])
	require.NoError(t, err)
	assert.Equal(t, 7776, v.Size())
	assert.Equal(t, 2, s.Size(), "the symmetric pair alone has two elements")

	w, err := v.CopyClosure(nil)
	require.NoError(t, err)
	assert.NotSame(t, v, w)
	assert.Equal(t, 7776, w.Size())
}

// TestSemigroup_EnumerateContext verifies cancellation leaves a
// consistent, resumable engine.
func TestSemigroup_EnumerateContext(t *testing.T) {
	s, err := semigroup.New(fullTransfGens(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.EnumerateContext(ctx, semigroup.LimitMax)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.IsDone())

	require.NoError(t, s.EnumerateContext(context.Background(), semigroup.LimitMax))
	assert.True(t, s.IsDone())
	assert.Equal(t, 7776, s.CurrentSize())
}

// TestSemigroup_WordToPos verifies word evaluation and its errors.
func TestSemigroup_WordToPos(t *testing.T) {
	s, err := semigroup.New(fullTransfGens(t)[:3])
	require.NoError(t, err)

	p, err := s.WordToPos([]int{1})
	require.NoError(t, err)
	assert.Equal(t, 1, p)

	q, err := s.WordToPos([]int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, q, "the transposition squares to the identity")

	_, err = s.WordToPos(nil)
	assert.ErrorIs(t, err, semigroup.ErrIndexOutOfBounds)
	_, err = s.WordToPos([]int{0, 3})
	assert.ErrorIs(t, err, semigroup.ErrIndexOutOfBounds)
}

// TestSemigroup_Setters verifies the runtime knobs.
func TestSemigroup_Setters(t *testing.T) {
	s, err := semigroup.New(fullTransfGens(t)[:2])
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetBatchSize(0), semigroup.ErrOptionViolation)
	assert.NoError(t, s.SetBatchSize(4))
	assert.ErrorIs(t, s.SetMaxThreads(0), semigroup.ErrOptionViolation)
	assert.NoError(t, s.SetMaxThreads(2))
	s.SetReport(true)
	s.SetReport(false)
	s.Reserve(64)

	assert.Equal(t, 2, s.Size())
}
