package element

import (
	"fmt"
	"strings"
)

// Transformation is a full map from [0, n) to itself, stored as the list
// of images of 0, 1, ..., n-1. Transformations act on the right, so the
// product t·u maps i to u(t(i)).
type Transformation struct {
	images []int
}

// NewTransformation builds a transformation from its image list.
// Returns ErrBadShape for an empty list or ErrBadImage when a value lies
// outside [0, n).
// Complexity: O(n).
func NewTransformation(images []int) (*Transformation, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("NewTransformation: %w", ErrBadShape)
	}
	for i, v := range images {
		if v < 0 || v >= len(images) {
			return nil, fmt.Errorf("NewTransformation: images[%d]=%d: %w", i, v, ErrBadImage)
		}
	}
	imgs := make([]int, len(images))
	copy(imgs, images)

	return &Transformation{images: imgs}, nil
}

// Image returns the image of point i.
// Precondition: 0 ≤ i < Degree().
func (t *Transformation) Image(i int) int {
	return t.images[i]
}

// Equal reports whether both transformations have the same image list.
func (t *Transformation) Equal(other Element) bool {
	o := other.(*Transformation)
	if len(t.images) != len(o.images) {
		return false
	}
	for i, v := range t.images {
		if v != o.images[i] {
			return false
		}
	}

	return true
}

// Hash folds the image list into an FNV-1a accumulator.
func (t *Transformation) Hash() uint64 {
	h := hashSeed
	for _, v := range t.images {
		h = hashStep(h, uint64(v))
	}

	return h
}

// Less orders transformations lexicographically by image list.
func (t *Transformation) Less(other Element) bool {
	o := other.(*Transformation)
	for i := range t.images {
		if t.images[i] != o.images[i] {
			return t.images[i] < o.images[i]
		}
	}

	return false
}

// Degree returns the number of points acted on.
func (t *Transformation) Degree() int {
	return len(t.images)
}

// Complexity of one product is one lookup per point.
func (t *Transformation) Complexity() int {
	return len(t.images)
}

// Identity returns the identity map on the same points.
func (t *Transformation) Identity() Element {
	imgs := make([]int, len(t.images))
	for i := range imgs {
		imgs[i] = i
	}

	return &Transformation{images: imgs}
}

// Redefine writes x·y into the receiver: i ↦ y(x(i)).
func (t *Transformation) Redefine(x, y Element) {
	xt, yt := x.(*Transformation), y.(*Transformation)
	for i := range t.images {
		t.images[i] = yt.images[xt.images[i]]
	}
}

// Copy returns a detached deep copy.
func (t *Transformation) Copy() Element {
	imgs := make([]int, len(t.images))
	copy(imgs, t.images)

	return &Transformation{images: imgs}
}

// Rank returns the number of distinct image points.
// Complexity: O(n).
func (t *Transformation) Rank() int {
	seen := make(map[int]struct{}, len(t.images))
	for _, v := range t.images {
		seen[v] = struct{}{}
	}

	return len(seen)
}

// String implements fmt.Stringer.
func (t *Transformation) String() string {
	parts := make([]string, len(t.images))
	for i, v := range t.images {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "Transformation([" + strings.Join(parts, ", ") + "])"
}
