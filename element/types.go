// Package element provides sentinel errors and the capability contract
// consumed by the enumeration engine.
package element

import "errors"

// Sentinel errors for element construction.
var (
	// ErrBadImage is returned when an image value lies outside [0, n).
	ErrBadImage = errors.New("element: image value out of range")

	// ErrBadShape is returned when matrix rows are missing or ragged.
	ErrBadShape = errors.New("element: rows must form a non-empty square")

	// ErrBadEntry is returned when a matrix entry lies outside the
	// semiring's carrier set.
	ErrBadEntry = errors.New("element: entry outside semiring carrier")

	// ErrBadBlocks is returned when a bipartition lookup table is not
	// normalised (block indices must appear in increasing first-use order).
	ErrBadBlocks = errors.New("element: blocks not normalised")

	// ErrBadDomain is returned when a partial perm domain/image pair is
	// inconsistent (length mismatch, repeats, or out-of-range points).
	ErrBadDomain = errors.New("element: invalid domain/image pair")

	// ErrBadAdjacency is returned when a PBR adjacency list mentions a
	// vertex outside [0, 2n).
	ErrBadAdjacency = errors.New("element: adjacency vertex out of range")
)

// None marks an undefined image point of a PartialPerm.
const None = -1

// Element is the capability contract of every enumerable value.
//
// All arguments passed by the engine share the receiver's concrete type
// and degree; implementations may type-assert without checking.
type Element interface {
	// Equal reports mathematical equality. Must be congruent with Hash.
	Equal(other Element) bool

	// Hash returns a hash of the value, equal for Equal values.
	Hash() uint64

	// Less reports whether the receiver sorts strictly before other in
	// the type's total order.
	Less(other Element) bool

	// Degree returns the number of points/rows the value acts on. All
	// elements multiplied together must share one degree.
	Degree() int

	// Complexity approximates the number of basic cell operations of one
	// product. Strictly positive; only ever compared against word lengths.
	Complexity() int

	// Identity returns the multiplicative identity of the same degree.
	Identity() Element

	// Redefine writes x·y into the receiver, in place. The engine
	// guarantees the receiver aliases neither x nor y.
	Redefine(x, y Element)

	// Copy returns a deep copy sharing no mutable state with the receiver.
	Copy() Element
}

// hashSeed and hashPrime drive the multiplicative accumulator shared by
// the slice-backed element types (FNV-1a constants).
const (
	hashSeed  uint64 = 14695981039346656037
	hashPrime uint64 = 1099511628211
)

// hashStep folds one value into an FNV-1a style accumulator.
func hashStep(h, v uint64) uint64 {
	h ^= v

	return h * hashPrime
}
