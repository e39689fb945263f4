package element

import (
	"fmt"
	"sort"
	"strings"
)

// bmat8One is the 8×8 identity: ones on the main diagonal, reading the
// 64 bits row-major from the most significant bit.
const bmat8One uint64 = 0x8040201008040201

// BMat8 is an 8×8 boolean matrix packed into a single uint64, read
// row-major from the most significant bit: bit 63 is entry (0, 0).
// Matrices of smaller dimension embed in the top-left corner.
type BMat8 struct {
	data uint64
}

// NewBMat8 wraps a packed 64-bit matrix.
func NewBMat8(data uint64) *BMat8 {
	return &BMat8{data: data}
}

// NewBMat8Ints builds a BMat8 from up to 8 rows of 0/1 entries, placed
// in the top-left corner. Returns ErrBadShape for more than 8 rows or a
// row longer than 8 entries.
// Complexity: O(1).
func NewBMat8Ints(rows [][]int) (*BMat8, error) {
	if len(rows) == 0 || len(rows) > 8 {
		return nil, fmt.Errorf("NewBMat8Ints: %w", ErrBadShape)
	}
	var data uint64
	for i, row := range rows {
		if len(row) > 8 {
			return nil, fmt.Errorf("NewBMat8Ints: row %d has %d entries: %w", i, len(row), ErrBadShape)
		}
		for j, v := range row {
			if v != 0 {
				data |= uint64(1) << (63 - (8*i + j))
			}
		}
	}

	return &BMat8{data: data}, nil
}

// ToInt returns the packed 64-bit representation.
func (m *BMat8) ToInt() uint64 {
	return m.data
}

// At returns the entry in row i, column j.
// Precondition: 0 ≤ i, j < 8.
func (m *BMat8) At(i, j int) bool {
	return (m.data<<(8*i+j))>>63 != 0
}

// Transpose returns the matrix transpose, using the bit shuffle from
// Knuth AoCP Vol. 4 Fasc. 1a, p. 15.
// Complexity: O(1).
func (m *BMat8) Transpose() *BMat8 {
	x := m.data
	y := (x ^ (x >> 7)) & 0xAA00AA00AA00AA
	x = x ^ y ^ (y << 7)
	y = (x ^ (x >> 14)) & 0xCCCC0000CCCC
	x = x ^ y ^ (y << 14)
	y = (x ^ (x >> 28)) & 0xF0F0F0F0
	x = x ^ y ^ (y << 28)

	return &BMat8{data: x}
}

// row returns row i as one byte, column 0 in the most significant bit.
func (m *BMat8) row(i int) uint8 {
	return uint8(m.data >> (56 - 8*i))
}

// Equal reports equality of the packed representations.
func (m *BMat8) Equal(other Element) bool {
	return m.data == other.(*BMat8).data
}

// Hash mixes the packed bits (splitmix64 finalizer).
func (m *BMat8) Hash() uint64 {
	h := m.data
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31

	return h
}

// Less orders matrices by their packed integer representation.
func (m *BMat8) Less(other Element) bool {
	return m.data < other.(*BMat8).data
}

// Degree returns 8: every BMat8 is internally 8×8.
func (m *BMat8) Degree() int {
	return 8
}

// Complexity of one product is a handful of word operations.
func (m *BMat8) Complexity() int {
	return 8
}

// Identity returns the 8×8 identity matrix.
func (m *BMat8) Identity() Element {
	return &BMat8{data: bmat8One}
}

// Redefine writes x·y into the receiver: entry (i, j) is set when row i
// of x meets column j of y.
// Complexity: O(1) — 64 word operations.
func (m *BMat8) Redefine(x, y Element) {
	xm := x.(*BMat8)
	tr := y.(*BMat8).Transpose()
	var data uint64
	for i := 0; i < 8; i++ {
		xr := xm.row(i)
		for j := 0; j < 8; j++ {
			if xr&tr.row(j) != 0 {
				data |= uint64(1) << (63 - (8*i + j))
			}
		}
	}
	m.data = data
}

// Copy returns a detached deep copy.
func (m *BMat8) Copy() Element {
	return &BMat8{data: m.data}
}

// RowSpaceBasis returns the matrix whose rows are the distinct rows of
// the receiver that are not unions of other rows, sorted decreasingly
// and packed from the top.
// Complexity: O(1) — 64 row pairs.
func (m *BMat8) RowSpaceBasis() *BMat8 {
	distinct := make([]uint8, 0, 8)
	for i := 0; i < 8; i++ {
		r := m.row(i)
		if r == 0 {
			continue
		}
		dup := false
		for _, d := range distinct {
			if d == r {
				dup = true
				break
			}
		}
		if !dup {
			distinct = append(distinct, r)
		}
	}

	basis := make([]uint8, 0, len(distinct))
	for _, r := range distinct {
		var union uint8
		for _, c := range distinct {
			if c != r && c|r == r {
				union |= c
			}
		}
		if union != r {
			basis = append(basis, r)
		}
	}
	sort.Slice(basis, func(i, j int) bool { return basis[i] > basis[j] })

	var data uint64
	for i, r := range basis {
		data |= uint64(r) << (56 - 8*i)
	}

	return &BMat8{data: data}
}

// ColSpaceBasis returns the transpose of the row space basis of the
// transpose.
func (m *BMat8) ColSpaceBasis() *BMat8 {
	return m.Transpose().RowSpaceBasis().Transpose()
}

// String implements fmt.Stringer, one row of 0/1 digits per line.
func (m *BMat8) String() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if m.At(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
