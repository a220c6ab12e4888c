package viewops

import (
	"golang.org/x/exp/constraints"

	"github.com/mk-55/typekit/pkg/types"
)

// Numeric constrains element types that support addition.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Sum adds up all elements of the view.
func Sum[T Numeric](v *types.View[T]) T {
	var total T
	for x := range v.Values() {
		total += x
	}
	return total
}

// Min returns the smallest element. It reports false when the view is
// empty.
func Min[T constraints.Ordered](v *types.View[T]) (T, bool) {
	var best T
	if v.IsEmpty() {
		return best, false
	}
	best = v.At(0)
	for x := range v.Values() {
		if x < best {
			best = x
		}
	}
	return best, true
}

// Max returns the largest element. It reports false when the view is
// empty.
func Max[T constraints.Ordered](v *types.View[T]) (T, bool) {
	var best T
	if v.IsEmpty() {
		return best, false
	}
	best = v.At(0)
	for x := range v.Values() {
		if x > best {
			best = x
		}
	}
	return best, true
}

// Index returns the position of the first element equal to target, or -1.
func Index[T comparable](v *types.View[T], target T) int {
	for i, x := range v.All() {
		if x == target {
			return i
		}
	}
	return -1
}

// Contains reports whether target occurs in the view.
func Contains[T comparable](v *types.View[T], target T) bool {
	return Index(v, target) >= 0
}

// Count returns how many elements equal target.
func Count[T comparable](v *types.View[T], target T) int {
	n := 0
	for x := range v.Values() {
		if x == target {
			n++
		}
	}
	return n
}

// Fill sets every element to x through the view.
func Fill[T any](v *types.View[T], x T) {
	for p := range v.Refs() {
		*p = x
	}
}

// Apply replaces every element with f(element) in place.
func Apply[T any](v *types.View[T], f func(T) T) {
	for p := range v.Refs() {
		*p = f(*p)
	}
}

// Collect copies the elements into a fresh slice, detaching them from the
// backing storage.
func Collect[T any](v *types.View[T]) []T {
	out := make([]T, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}

// Equal reports whether the view holds exactly the elements of other, in
// order.
func Equal[T comparable](v *types.View[T], other []T) bool {
	if v.Len() != len(other) {
		return false
	}
	for i, x := range v.All() {
		if other[i] != x {
			return false
		}
	}
	return true
}

// Drain consumes it to exhaustion and returns the elements in traversal
// order.
func Drain[T any](it types.ForwardIterator[T]) []T {
	var out []T
	for {
		x, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, x)
	}
}

// Advance moves it forward by up to n elements and returns how many steps
// were actually taken.
func Advance[T any](it types.ForwardIterator[T], n int) int {
	moved := 0
	for moved < n {
		if _, ok := it.Next(); !ok {
			break
		}
		moved++
	}
	return moved
}
