package element

import (
	"fmt"
	"sort"
	"strings"
)

// PartialPerm is an injective partial map from [0, n) to itself, stored
// as the list of images with None marking points outside the domain.
// Partial perms act on the right: the product maps i to y(x(i)) when
// both images are defined and to None otherwise.
type PartialPerm struct {
	images []int
}

// NewPartialPerm builds a partial perm of degree n from parallel domain
// and image lists. The pairs are sorted by domain point; repeats in
// either list or points outside [0, n) yield ErrBadDomain.
// Complexity: O(m log m + n) for m domain points.
func NewPartialPerm(dom, img []int, n int) (*PartialPerm, error) {
	if n <= 0 || len(dom) != len(img) || len(dom) > n {
		return nil, fmt.Errorf("NewPartialPerm: %w", ErrBadDomain)
	}
	type pair struct{ d, r int }
	pairs := make([]pair, len(dom))
	for i := range dom {
		if dom[i] < 0 || dom[i] >= n || img[i] < 0 || img[i] >= n {
			return nil, fmt.Errorf("NewPartialPerm: point %d: %w", i, ErrBadDomain)
		}
		pairs[i] = pair{d: dom[i], r: img[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].d < pairs[j].d })

	images := make([]int, n)
	for i := range images {
		images[i] = None
	}
	seen := make(map[int]struct{}, len(pairs))
	for i, p := range pairs {
		if i > 0 && pairs[i-1].d == p.d {
			return nil, fmt.Errorf("NewPartialPerm: repeated domain point %d: %w", p.d, ErrBadDomain)
		}
		if _, dup := seen[p.r]; dup {
			return nil, fmt.Errorf("NewPartialPerm: repeated image point %d: %w", p.r, ErrBadDomain)
		}
		seen[p.r] = struct{}{}
		images[p.d] = p.r
	}

	return &PartialPerm{images: images}, nil
}

// NewPartialPermImages builds a partial perm directly from an image list
// with None holes, validating injectivity on the defined points.
// Complexity: O(n).
func NewPartialPermImages(images []int) (*PartialPerm, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("NewPartialPermImages: %w", ErrBadShape)
	}
	seen := make(map[int]struct{}, len(images))
	imgs := make([]int, len(images))
	for i, v := range images {
		if v == None {
			imgs[i] = None
			continue
		}
		if v < 0 || v >= len(images) {
			return nil, fmt.Errorf("NewPartialPermImages: images[%d]=%d: %w", i, v, ErrBadImage)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("NewPartialPermImages: repeated image %d: %w", v, ErrBadDomain)
		}
		seen[v] = struct{}{}
		imgs[i] = v
	}

	return &PartialPerm{images: imgs}, nil
}

// Image returns the image of point i, or None.
// Precondition: 0 ≤ i < Degree().
func (p *PartialPerm) Image(i int) int {
	return p.images[i]
}

// Rank returns the number of defined points.
// Complexity: O(n).
func (p *PartialPerm) Rank() int {
	r := 0
	for _, v := range p.images {
		if v != None {
			r++
		}
	}

	return r
}

// Equal reports whether both partial perms have the same image list.
func (p *PartialPerm) Equal(other Element) bool {
	o := other.(*PartialPerm)
	if len(p.images) != len(o.images) {
		return false
	}
	for i, v := range p.images {
		if v != o.images[i] {
			return false
		}
	}

	return true
}

// Hash folds the image list into an FNV-1a accumulator; holes hash as a
// distinct sentinel.
func (p *PartialPerm) Hash() uint64 {
	h := hashSeed
	for _, v := range p.images {
		h = hashStep(h, uint64(v+1))
	}

	return h
}

// Less orders partial perms lexicographically with None sorting first.
func (p *PartialPerm) Less(other Element) bool {
	o := other.(*PartialPerm)
	for i := range p.images {
		if p.images[i] != o.images[i] {
			return p.images[i] < o.images[i]
		}
	}

	return false
}

// Degree returns the number of points acted on.
func (p *PartialPerm) Degree() int {
	return len(p.images)
}

// Complexity of one product is one lookup per point.
func (p *PartialPerm) Complexity() int {
	return len(p.images)
}

// Identity returns the identity perm defined on every point.
func (p *PartialPerm) Identity() Element {
	imgs := make([]int, len(p.images))
	for i := range imgs {
		imgs[i] = i
	}

	return &PartialPerm{images: imgs}
}

// Redefine writes x·y into the receiver: i ↦ y(x(i)), holes propagate.
func (p *PartialPerm) Redefine(x, y Element) {
	xp, yp := x.(*PartialPerm), y.(*PartialPerm)
	for i := range p.images {
		if xp.images[i] == None {
			p.images[i] = None
		} else {
			p.images[i] = yp.images[xp.images[i]]
		}
	}
}

// Copy returns a detached deep copy.
func (p *PartialPerm) Copy() Element {
	imgs := make([]int, len(p.images))
	copy(imgs, p.images)

	return &PartialPerm{images: imgs}
}

// String implements fmt.Stringer; holes print as "-".
func (p *PartialPerm) String() string {
	parts := make([]string, len(p.images))
	for i, v := range p.images {
		if v == None {
			parts[i] = "-"
		} else {
			parts[i] = fmt.Sprintf("%d", v)
		}
	}

	return "PartialPerm([" + strings.Join(parts, ", ") + "])"
}
