// Package element defines the multiplicable values enumerated by the
// engine and the capability contract they satisfy.
//
// 🚀 What is an Element?
//
//	An opaque value with an associative product. The enumeration engine
//	never looks inside: it multiplies, compares, hashes and copies
//	through the Element interface. Implementations provided here:
//	  • Transformation          — full maps on n points
//	  • PartialPerm             — injective partial maps on n points
//	  • BooleanMat              — n×n matrices over the booleans
//	  • BMat8                   — 8×8 boolean matrices in one uint64
//	  • Bipartition             — set partitions of 2n points
//	  • MatrixOverSemiring      — n×n matrices over a pluggable semiring
//	  • ProjectiveMaxPlusMatrix — max-plus matrices up to scalar shift
//	  • PBR                     — partitioned binary relations
//
// ✨ Contract (see Element):
//   - Equal congruent with Hash; Less a total order per type and degree
//   - Redefine(x, y) writes x·y into the receiver in place; the
//     receiver never aliases x or y
//   - Identity returns the multiplicative identity of the same degree
//   - Complexity approximates the cost of one product, letting callers
//     trade a direct multiplication against a Cayley-graph path walk
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/froipin/element"
//
//	t, err := element.NewTransformation([]int{1, 0, 2})
//	u := t.Copy()
//	u.Redefine(t, t) // u = t·t
//
// See examples in example_test.go.
package element
