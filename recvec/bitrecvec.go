package recvec

import "github.com/bits-and-blooms/bitset"

// BitRecVec is a RecVec of booleans packed one bit per cell into a
// bitset. It mirrors the RecVec API for the common case of per-(row, col)
// flags, such as the "reduced" flag of a (position, letter) pair.
type BitRecVec struct {
	cols int
	rows int
	bits *bitset.BitSet
}

// NewBit creates a BitRecVec with the given number of columns (≥ 0) and
// zero rows. All cells start false.
// Complexity: O(1).
func NewBit(cols int) *BitRecVec {
	if cols < 0 {
		cols = 0
	}

	return &BitRecVec{cols: cols, bits: bitset.New(0)}
}

// Rows returns the number of rows appended so far.
// Complexity: O(1).
func (bv *BitRecVec) Rows() int {
	return bv.rows
}

// Cols returns the current number of columns.
// Complexity: O(1).
func (bv *BitRecVec) Cols() int {
	return bv.cols
}

// Get returns the cell at (row, col).
// Precondition: 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Complexity: O(1).
func (bv *BitRecVec) Get(row, col int) bool {
	return bv.bits.Test(uint(row*bv.cols + col))
}

// Set assigns v to the cell at (row, col).
// Precondition: 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Complexity: O(1).
func (bv *BitRecVec) Set(row, col int, v bool) {
	bv.bits.SetTo(uint(row*bv.cols+col), v)
}

// AppendRow adds one all-false row and returns its index.
// Complexity: O(1) (bits materialize lazily on Set).
func (bv *BitRecVec) AppendRow() int {
	bv.rows++

	return bv.rows - 1
}

// AppendRows adds n all-false rows.
// Complexity: O(1).
func (bv *BitRecVec) AppendRows(n int) {
	bv.rows += n
}

// AddCols widens the table by m columns; existing cells keep their values
// and the new trailing cells of every row are false.
// Complexity: O(rows*cols/64).
func (bv *BitRecVec) AddCols(m int) {
	if m <= 0 {
		return
	}
	newCols := bv.cols + m
	next := bitset.New(uint(bv.rows * newCols))
	for r := 0; r < bv.rows; r++ {
		for c := 0; c < bv.cols; c++ {
			if bv.bits.Test(uint(r*bv.cols + c)) {
				next.Set(uint(r*newCols + c))
			}
		}
	}
	bv.cols = newCols
	bv.bits = next
}

// Count returns the number of true cells.
// Complexity: O(rows*cols/64).
func (bv *BitRecVec) Count() int {
	return int(bv.bits.Count())
}

// Clone returns a deep copy of the table.
// Complexity: O(rows*cols/64).
func (bv *BitRecVec) Clone() *BitRecVec {
	return &BitRecVec{cols: bv.cols, rows: bv.rows, bits: bv.bits.Clone()}
}
