// Package recvec provides a fixed-width, append-only-rows, row-major
// dynamic matrix — the backing table for Cayley graphs and per-cell flags.
//
// 🚀 What is a RecVec?
//
//	A "rectangular vector": a matrix with a fixed number of columns whose
//	rows are appended over time, stored in one flat slice for cache
//	friendliness. It is the natural shape for tables indexed by
//	(position, letter) pairs that grow as new positions are discovered:
//	  • right/left Cayley graph edges (values are positions)
//	  • per-(position, letter) boolean flags (BitRecVec, one bit per cell)
//
// ✨ Key features:
//   - O(1) Get/Set, O(cols) AppendRow
//   - AddCols widens every existing row in place (rows keep their data)
//   - BitRecVec: same shape over a bitset, one bit per cell
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/froipin/recvec"
//
//	rv := recvec.New[int](3, -1) // 3 columns, cells default to -1
//	r := rv.AppendRow()
//	rv.Set(r, 0, 42)
//	v := rv.Get(r, 0)
//
// Performance:
//
//   - Time:   O(1) access, amortized O(cols) per appended row
//   - Memory: rows*cols cells in one allocation (plus growth slack)
//
// See examples in example_test.go.
package recvec
