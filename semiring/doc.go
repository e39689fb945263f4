// Package semiring provides pluggable semirings over integer scalars,
// used as the arithmetic of matrix elements in the enumeration engine.
//
// 🚀 What is a semiring?
//
//	A set with two operations, Plus and Prod, where Plus is commutative
//	with identity Zero, Prod is associative with identity One, and Prod
//	distributes over Plus. Matrices over a semiring multiply exactly like
//	ordinary matrices with (+, ×) replaced by (Plus, Prod):
//	  • Integers         — ordinary (+, ×)
//	  • MaxPlus/MinPlus  — (max, +) and (min, +) with ∓∞ as Zero
//	  • TropicalMaxPlus  — max-plus truncated at a threshold t
//	  • TropicalMinPlus  — min-plus truncated at a threshold t
//	  • Natural          — ℕ modulo "threshold t, period p"
//
// ✨ Key features:
//   - NegInf / PosInf sentinels absorb through Prod and are neutral
//     through Plus
//   - truncation and congruence applied after every operation, so matrix
//     entries stay inside the finite carrier set
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/froipin/semiring"
//
//	sr := semiring.NewTropicalMaxPlus(33)
//	v := sr.Prod(sr.Plus(22, 10), 21) // tropical arithmetic, capped at 33
//
// See examples in example_test.go.
package semiring
