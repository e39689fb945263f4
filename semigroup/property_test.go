package semigroup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/froipin/element"
	"github.com/katalvlaran/froipin/semigroup"
)

// genImages yields random images of a transformation on four points.
func genImages() gopter.Gen {
	return gen.SliceOfN(4, gen.IntRange(0, 3))
}

// buildRandom enumerates the semigroup generated by two random
// transformations. Duplicate pairs are fine; they exercise the
// duplicate-generator rules.
func buildRandom(a, b []int) *semigroup.Semigroup {
	x, err := element.NewTransformation(a)
	if err != nil {
		return nil
	}
	y, err := element.NewTransformation(b)
	if err != nil {
		return nil
	}
	s, err := semigroup.New([]element.Element{x, y})
	if err != nil {
		return nil
	}

	return s
}

// TestSemigroup_Properties checks the core enumeration invariants on
// randomly generated transformation semigroups.
func TestSemigroup_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng.Seed(1827) // stable corpus

	properties := gopter.NewProperties(parameters)

	properties.Property("Position(At(p)) == p for every position", prop.ForAll(
		func(a, b []int) bool {
			s := buildRandom(a, b)
			if s == nil {
				return false
			}
			for p := 0; p < s.Size(); p++ {
				x, err := s.At(p)
				if err != nil {
					return false
				}
				if s.Position(x) != p {
					return false
				}
			}

			return true
		},
		genImages(), genImages(),
	))

	properties.Property("minimal factorisations evaluate back to their position", prop.ForAll(
		func(a, b []int) bool {
			s := buildRandom(a, b)
			if s == nil {
				return false
			}
			for p := 0; p < s.Size(); p++ {
				w, err := s.MinimalFactorisation(p)
				if err != nil {
					return false
				}
				l, err := s.Length(p)
				if err != nil || len(w) != l {
					return false
				}
				q, err := s.WordToPos(w)
				if err != nil || q != p {
					return false
				}
			}

			return true
		},
		genImages(), genImages(),
	))

	properties.Property("FastProduct agrees with a real multiplication", prop.ForAll(
		func(a, b []int, i, j int) bool {
			s := buildRandom(a, b)
			if s == nil {
				return false
			}
			n := s.Size()
			i, j = i%n, j%n

			got, err := s.FastProduct(i, j)
			if err != nil {
				return false
			}
			xi, err := s.At(i)
			if err != nil {
				return false
			}
			xj, err := s.At(j)
			if err != nil {
				return false
			}
			p := xi.Copy()
			p.Redefine(xi, xj)

			return s.Position(p) == got
		},
		genImages(), genImages(), gen.IntRange(0, 1<<20), gen.IntRange(0, 1<<20),
	))

	properties.Property("sorted view is a permutation in strictly increasing order", prop.ForAll(
		func(a, b []int) bool {
			s := buildRandom(a, b)
			if s == nil {
				return false
			}
			n := s.Size()
			var prev element.Element
			for r := 0; r < n; r++ {
				x, err := s.SortedAt(r)
				if err != nil {
					return false
				}
				if prev != nil && !prev.Less(x) {
					return false
				}
				prev = x
			}

			return true
		},
		genImages(), genImages(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestSemigroup_FactorisationAliases verifies that Factorisation and
// MinimalFactorisation agree word for word.
func TestSemigroup_FactorisationAliases(t *testing.T) {
	s := buildRandom([]int{1, 2, 3, 0}, []int{0, 0, 2, 3})
	if s == nil {
		t.Fatal("constructor failed")
	}

	for p := 0; p < s.Size(); p++ {
		w1, err := s.MinimalFactorisation(p)
		if err != nil {
			t.Fatal(err)
		}
		w2, err := s.Factorisation(p)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(w1, w2); diff != "" {
			t.Fatalf("factorisations differ at %d (-minimal +plain):\n%s", p, diff)
		}
	}
}
