package element

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/froipin/semiring"
)

// MatrixOverSemiring is an n×n matrix with entries in a pluggable
// semiring, stored row-major in a flat slice. The product is the usual
// matrix product with (+, ×) replaced by (Plus, Prod).
type MatrixOverSemiring struct {
	deg  int
	data []int64
	sr   semiring.Semiring[int64]
}

// NewMatrixOverSemiring builds a matrix from its rows over the given
// semiring. Returns ErrBadShape unless rows form a non-empty square.
// Complexity: O(n²).
func NewMatrixOverSemiring(rows [][]int64, sr semiring.Semiring[int64]) (*MatrixOverSemiring, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewMatrixOverSemiring: %w", ErrBadShape)
	}
	data := make([]int64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewMatrixOverSemiring: row %d has %d entries, want %d: %w",
				i, len(row), n, ErrBadShape)
		}
		data = append(data, row...)
	}

	return &MatrixOverSemiring{deg: n, data: data, sr: sr}, nil
}

// NewTropicalMaxPlusMatrix builds a matrix over the truncated max-plus
// semiring with the given threshold, validating that every entry lies in
// the carrier set {NegInf, 0, ..., threshold}.
// Complexity: O(n²).
func NewTropicalMaxPlusMatrix(rows [][]int64, threshold int64) (*MatrixOverSemiring, error) {
	sr := semiring.NewTropicalMaxPlus(threshold)
	for i, row := range rows {
		for j, v := range row {
			if !sr.Contains(v) {
				return nil, fmt.Errorf("NewTropicalMaxPlusMatrix: entry (%d,%d)=%d: %w",
					i, j, v, ErrBadEntry)
			}
		}
	}

	return NewMatrixOverSemiring(rows, sr)
}

// NewTropicalMinPlusMatrix builds a matrix over the truncated min-plus
// semiring with the given threshold, validating entries likewise.
// Complexity: O(n²).
func NewTropicalMinPlusMatrix(rows [][]int64, threshold int64) (*MatrixOverSemiring, error) {
	sr := semiring.NewTropicalMinPlus(threshold)
	for i, row := range rows {
		for j, v := range row {
			if !sr.Contains(v) {
				return nil, fmt.Errorf("NewTropicalMinPlusMatrix: entry (%d,%d)=%d: %w",
					i, j, v, ErrBadEntry)
			}
		}
	}

	return NewMatrixOverSemiring(rows, sr)
}

// NewNaturalMatrix builds a matrix over the natural-number semiring with
// the given threshold and period.
// Complexity: O(n²).
func NewNaturalMatrix(rows [][]int64, threshold, period int64) (*MatrixOverSemiring, error) {
	return NewMatrixOverSemiring(rows, semiring.NewNatural(threshold, period))
}

// At returns the entry in row i, column j.
// Precondition: 0 ≤ i, j < Degree().
func (m *MatrixOverSemiring) At(i, j int) int64 {
	return m.data[i*m.deg+j]
}

// Semiring returns the arithmetic the matrix multiplies with.
func (m *MatrixOverSemiring) Semiring() semiring.Semiring[int64] {
	return m.sr
}

// Equal reports entry-wise equality. The engine only compares matrices
// over one shared semiring.
func (m *MatrixOverSemiring) Equal(other Element) bool {
	o := other.(*MatrixOverSemiring)
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

// Hash folds the entries into an FNV-1a accumulator.
func (m *MatrixOverSemiring) Hash() uint64 {
	h := hashSeed
	for _, v := range m.data {
		h = hashStep(h, uint64(v))
	}

	return h
}

// Less orders matrices lexicographically by flat entry list.
func (m *MatrixOverSemiring) Less(other Element) bool {
	o := other.(*MatrixOverSemiring)
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return m.data[i] < o.data[i]
		}
	}

	return false
}

// Degree returns the dimension n.
func (m *MatrixOverSemiring) Degree() int {
	return m.deg
}

// Complexity of one product is cubic in the dimension.
func (m *MatrixOverSemiring) Complexity() int {
	return m.deg * m.deg * m.deg
}

// Identity returns the semiring identity matrix: One on the diagonal,
// Zero elsewhere.
func (m *MatrixOverSemiring) Identity() Element {
	data := make([]int64, m.deg*m.deg)
	for i := range data {
		data[i] = m.sr.Zero()
	}
	for i := 0; i < m.deg; i++ {
		data[i*m.deg+i] = m.sr.One()
	}

	return &MatrixOverSemiring{deg: m.deg, data: data, sr: m.sr}
}

// Redefine writes x·y into the receiver with semiring arithmetic.
func (m *MatrixOverSemiring) Redefine(x, y Element) {
	xm, ym := x.(*MatrixOverSemiring), y.(*MatrixOverSemiring)
	n := m.deg
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.sr.Zero()
			for k := 0; k < n; k++ {
				v = m.sr.Plus(v, m.sr.Prod(xm.data[i*n+k], ym.data[k*n+j]))
			}
			m.data[i*n+j] = v
		}
	}
}

// Copy returns a detached deep copy (the semiring is shared, it is
// immutable).
func (m *MatrixOverSemiring) Copy() Element {
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &MatrixOverSemiring{deg: m.deg, data: data, sr: m.sr}
}

// String implements fmt.Stringer.
func (m *MatrixOverSemiring) String() string {
	return "MatrixOverSemiring(" + m.rowsString() + ")"
}

// rowsString renders the rows for String implementations.
func (m *MatrixOverSemiring) rowsString() string {
	var sb strings.Builder
	for i := 0; i < m.deg; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j := 0; j < m.deg; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			switch v := m.data[i*m.deg+j]; v {
			case semiring.NegInf:
				sb.WriteString("-inf")
			case semiring.PosInf:
				sb.WriteString("+inf")
			default:
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// ProjectiveMaxPlusMatrix is a max-plus matrix considered up to adding a
// common scalar to every finite entry. Every construction and product
// renormalises by subtracting the maximal finite entry, so scalar
// multiples share one representative.
type ProjectiveMaxPlusMatrix struct {
	MatrixOverSemiring
}

// NewProjectiveMaxPlusMatrix builds a projective max-plus matrix from
// its rows; entries are int64 with NegInf allowed.
// Complexity: O(n²).
func NewProjectiveMaxPlusMatrix(rows [][]int64) (*ProjectiveMaxPlusMatrix, error) {
	inner, err := NewMatrixOverSemiring(rows, semiring.NewMaxPlus())
	if err != nil {
		return nil, err
	}
	m := &ProjectiveMaxPlusMatrix{MatrixOverSemiring: *inner}
	m.normalize()

	return m, nil
}

// normalize subtracts the maximal finite entry from every finite entry.
func (m *ProjectiveMaxPlusMatrix) normalize() {
	max := semiring.NegInf
	for _, v := range m.data {
		if v != semiring.NegInf && v > max {
			max = v
		}
	}
	if max == semiring.NegInf {
		return
	}
	for i, v := range m.data {
		if v != semiring.NegInf {
			m.data[i] = v - max
		}
	}
}

// Equal reports equality of the normalised representatives.
func (m *ProjectiveMaxPlusMatrix) Equal(other Element) bool {
	o := other.(*ProjectiveMaxPlusMatrix)

	return m.MatrixOverSemiring.Equal(&o.MatrixOverSemiring)
}

// Less orders the normalised representatives lexicographically.
func (m *ProjectiveMaxPlusMatrix) Less(other Element) bool {
	o := other.(*ProjectiveMaxPlusMatrix)

	return m.MatrixOverSemiring.Less(&o.MatrixOverSemiring)
}

// Identity returns the projective identity matrix.
func (m *ProjectiveMaxPlusMatrix) Identity() Element {
	inner := m.MatrixOverSemiring.Identity().(*MatrixOverSemiring)
	p := &ProjectiveMaxPlusMatrix{MatrixOverSemiring: *inner}
	p.normalize()

	return p
}

// Redefine writes the normalised product x·y into the receiver.
func (m *ProjectiveMaxPlusMatrix) Redefine(x, y Element) {
	xm, ym := x.(*ProjectiveMaxPlusMatrix), y.(*ProjectiveMaxPlusMatrix)
	m.MatrixOverSemiring.Redefine(&xm.MatrixOverSemiring, &ym.MatrixOverSemiring)
	m.normalize()
}

// Copy returns a detached deep copy.
func (m *ProjectiveMaxPlusMatrix) Copy() Element {
	inner := m.MatrixOverSemiring.Copy().(*MatrixOverSemiring)

	return &ProjectiveMaxPlusMatrix{MatrixOverSemiring: *inner}
}

// String implements fmt.Stringer.
func (m *ProjectiveMaxPlusMatrix) String() string {
	return "ProjectiveMaxPlusMatrix(" + m.rowsString() + ")"
}
