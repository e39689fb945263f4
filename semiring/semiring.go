package semiring

import (
	"math"

	"golang.org/x/exp/constraints"
)

// NegInf and PosInf are the additive identities of the max-plus and
// min-plus semirings. They absorb through Prod and are neutral through
// Plus; no finite carrier value may equal either sentinel.
const (
	NegInf int64 = math.MinInt64
	PosInf int64 = math.MaxInt64
)

// Semiring is the arithmetic consumed by matrix elements: two operations
// with their identities. Implementations must keep Plus commutative and
// associative, Prod associative, and Prod distributive over Plus.
type Semiring[T constraints.Integer] interface {
	// Plus returns the semiring sum of x and y.
	Plus(x, y T) T
	// Prod returns the semiring product of x and y.
	Prod(x, y T) T
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
}

// Integers is the usual ring of integers under (+, ×).
type Integers[T constraints.Integer] struct{}

// NewIntegers returns the (+, ×) semiring over T.
func NewIntegers[T constraints.Integer]() Integers[T] { return Integers[T]{} }

// Plus returns x + y.
func (Integers[T]) Plus(x, y T) T { return x + y }

// Prod returns x * y.
func (Integers[T]) Prod(x, y T) T { return x * y }

// Zero returns 0.
func (Integers[T]) Zero() T { return 0 }

// One returns 1.
func (Integers[T]) One() T { return 1 }

// MaxPlus is the (max, +) semiring over int64 with NegInf as Zero.
type MaxPlus struct{}

// NewMaxPlus returns the (max, +) semiring.
func NewMaxPlus() MaxPlus { return MaxPlus{} }

// Plus returns max(x, y).
func (MaxPlus) Plus(x, y int64) int64 {
	if x > y {
		return x
	}

	return y
}

// Prod returns x + y, with NegInf absorbing.
func (MaxPlus) Prod(x, y int64) int64 {
	if x == NegInf || y == NegInf {
		return NegInf
	}

	return x + y
}

// Zero returns NegInf.
func (MaxPlus) Zero() int64 { return NegInf }

// One returns 0.
func (MaxPlus) One() int64 { return 0 }

// MinPlus is the (min, +) semiring over int64 with PosInf as Zero.
type MinPlus struct{}

// NewMinPlus returns the (min, +) semiring.
func NewMinPlus() MinPlus { return MinPlus{} }

// Plus returns min(x, y).
func (MinPlus) Plus(x, y int64) int64 {
	if x < y {
		return x
	}

	return y
}

// Prod returns x + y, with PosInf absorbing.
func (MinPlus) Prod(x, y int64) int64 {
	if x == PosInf || y == PosInf {
		return PosInf
	}

	return x + y
}

// Zero returns PosInf.
func (MinPlus) Zero() int64 { return PosInf }

// One returns 0.
func (MinPlus) One() int64 { return 0 }

// TropicalMaxPlus is the max-plus semiring truncated at a threshold t:
// the carrier is {NegInf, 0, 1, ..., t} and every result above t is
// replaced by t.
type TropicalMaxPlus struct {
	threshold int64
}

// NewTropicalMaxPlus returns the truncated max-plus semiring with the
// given threshold (≥ 0).
func NewTropicalMaxPlus(threshold int64) TropicalMaxPlus {
	return TropicalMaxPlus{threshold: threshold}
}

// Threshold returns the truncation threshold.
func (s TropicalMaxPlus) Threshold() int64 { return s.threshold }

// Contains reports whether v lies in the carrier set.
func (s TropicalMaxPlus) Contains(v int64) bool {
	return v == NegInf || (v >= 0 && v <= s.threshold)
}

// Plus returns max(x, y) truncated at the threshold.
func (s TropicalMaxPlus) Plus(x, y int64) int64 {
	if x < y {
		x = y
	}
	if x != NegInf && x > s.threshold {
		x = s.threshold
	}

	return x
}

// Prod returns x + y truncated at the threshold, with NegInf absorbing.
func (s TropicalMaxPlus) Prod(x, y int64) int64 {
	if x == NegInf || y == NegInf {
		return NegInf
	}
	v := x + y
	if v > s.threshold {
		v = s.threshold
	}

	return v
}

// Zero returns NegInf.
func (TropicalMaxPlus) Zero() int64 { return NegInf }

// One returns 0.
func (TropicalMaxPlus) One() int64 { return 0 }

// TropicalMinPlus is the min-plus semiring truncated at a threshold t:
// the carrier is {0, 1, ..., t, PosInf} and every finite result above t
// is replaced by t.
type TropicalMinPlus struct {
	threshold int64
}

// NewTropicalMinPlus returns the truncated min-plus semiring with the
// given threshold (≥ 0).
func NewTropicalMinPlus(threshold int64) TropicalMinPlus {
	return TropicalMinPlus{threshold: threshold}
}

// Threshold returns the truncation threshold.
func (s TropicalMinPlus) Threshold() int64 { return s.threshold }

// Contains reports whether v lies in the carrier set.
func (s TropicalMinPlus) Contains(v int64) bool {
	return v == PosInf || (v >= 0 && v <= s.threshold)
}

// Plus returns min(x, y).
func (s TropicalMinPlus) Plus(x, y int64) int64 {
	if x > y {
		x = y
	}
	if x != PosInf && x > s.threshold {
		x = s.threshold
	}

	return x
}

// Prod returns x + y truncated at the threshold, with PosInf absorbing.
func (s TropicalMinPlus) Prod(x, y int64) int64 {
	if x == PosInf || y == PosInf {
		return PosInf
	}
	v := x + y
	if v > s.threshold {
		v = s.threshold
	}

	return v
}

// Zero returns PosInf.
func (TropicalMinPlus) Zero() int64 { return PosInf }

// One returns 0.
func (TropicalMinPlus) One() int64 { return 0 }

// Natural is the quotient of the natural numbers by the congruence
// "threshold t, period p": values x ≥ t are identified with
// t + ((x − t) mod p), so the carrier is {0, ..., t+p−1}.
type Natural struct {
	threshold int64
	period    int64
}

// NewNatural returns the natural-number semiring with the given
// threshold (≥ 0) and period (≥ 1).
func NewNatural(threshold, period int64) Natural {
	return Natural{threshold: threshold, period: period}
}

// Threshold returns t of the congruence.
func (s Natural) Threshold() int64 { return s.threshold }

// Period returns p of the congruence.
func (s Natural) Period() int64 { return s.period }

// reduce maps x onto the canonical representative of its congruence
// class.
func (s Natural) reduce(x int64) int64 {
	if x < s.threshold {
		return x
	}

	return s.threshold + (x-s.threshold)%s.period
}

// Plus returns the reduced sum.
func (s Natural) Plus(x, y int64) int64 { return s.reduce(x + y) }

// Prod returns the reduced product.
func (s Natural) Prod(x, y int64) int64 { return s.reduce(x * y) }

// Zero returns 0.
func (Natural) Zero() int64 { return 0 }

// One returns 1.
func (Natural) One() int64 { return 1 }
