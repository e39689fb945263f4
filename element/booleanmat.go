package element

import (
	"fmt"
	"strings"
)

// BooleanMat is an n×n matrix over the booleans, stored row-major in a
// flat slice. The product is the usual matrix product with OR as sum and
// AND as product.
type BooleanMat struct {
	deg  int
	data []bool
}

// NewBooleanMat builds a boolean matrix from its rows.
// Returns ErrBadShape unless rows form a non-empty square.
// Complexity: O(n²).
func NewBooleanMat(rows [][]bool) (*BooleanMat, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewBooleanMat: %w", ErrBadShape)
	}
	data := make([]bool, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewBooleanMat: row %d has %d entries, want %d: %w",
				i, len(row), n, ErrBadShape)
		}
		data = append(data, row...)
	}

	return &BooleanMat{deg: n, data: data}, nil
}

// NewBooleanMatInts builds a boolean matrix from 0/1 integer rows, the
// notation used throughout the test corpus.
// Complexity: O(n²).
func NewBooleanMatInts(rows [][]int) (*BooleanMat, error) {
	bools := make([][]bool, len(rows))
	for i, row := range rows {
		bools[i] = make([]bool, len(row))
		for j, v := range row {
			bools[i][j] = v != 0
		}
	}

	return NewBooleanMat(bools)
}

// At returns the entry in row i, column j.
// Precondition: 0 ≤ i, j < Degree().
func (m *BooleanMat) At(i, j int) bool {
	return m.data[i*m.deg+j]
}

// Equal reports entry-wise equality.
func (m *BooleanMat) Equal(other Element) bool {
	o := other.(*BooleanMat)
	if m.deg != o.deg {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// Hash folds the bit pattern into an FNV-1a accumulator.
func (m *BooleanMat) Hash() uint64 {
	h := hashSeed
	for _, v := range m.data {
		b := uint64(0)
		if v {
			b = 1
		}
		h = hashStep(h, b)
	}

	return h
}

// Less orders matrices lexicographically over the flat bit pattern with
// false < true.
func (m *BooleanMat) Less(other Element) bool {
	o := other.(*BooleanMat)
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return !m.data[i]
		}
	}

	return false
}

// Degree returns the dimension n.
func (m *BooleanMat) Degree() int {
	return m.deg
}

// Complexity of one product is cubic in the dimension.
func (m *BooleanMat) Complexity() int {
	return m.deg * m.deg * m.deg
}

// Identity returns the identity matrix of the same dimension.
func (m *BooleanMat) Identity() Element {
	data := make([]bool, m.deg*m.deg)
	for i := 0; i < m.deg; i++ {
		data[i*m.deg+i] = true
	}

	return &BooleanMat{deg: m.deg, data: data}
}

// Redefine writes x·y into the receiver using OR-of-ANDs.
func (m *BooleanMat) Redefine(x, y Element) {
	xm, ym := x.(*BooleanMat), y.(*BooleanMat)
	n := m.deg
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := false
			for k := 0; k < n; k++ {
				if xm.data[i*n+k] && ym.data[k*n+j] {
					v = true
					break
				}
			}
			m.data[i*n+j] = v
		}
	}
}

// Copy returns a detached deep copy.
func (m *BooleanMat) Copy() Element {
	data := make([]bool, len(m.data))
	copy(data, m.data)

	return &BooleanMat{deg: m.deg, data: data}
}

// String implements fmt.Stringer.
func (m *BooleanMat) String() string {
	var sb strings.Builder
	sb.WriteString("BooleanMat(")
	for i := 0; i < m.deg; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j := 0; j < m.deg; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if m.data[i*m.deg+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(')')

	return sb.String()
}
