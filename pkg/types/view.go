package types

import "iter"

// View is a non-owning window onto a contiguous run of elements backed by
// caller-owned storage. It never allocates, grows or frees the backing
// buffer, and the buffer must outlive it.
//
// Do not copy a View after construction; pass *View[T] instead. Operations
// on a copy panic. The zero value is a valid empty view and, holding no
// storage, is exempt from the copy rule.
type View[T any] struct {
	addr *View[T] // of receiver, to detect copies by value
	data []T
}

// NewView wraps buf without copying it. Later writes through the View are
// visible in buf and vice versa.
func NewView[T any](buf []T) *View[T] {
	v := &View[T]{data: buf}
	v.addr = v
	return v
}

func (v *View[T]) copyCheck() {
	if v.addr != nil && v.addr != v {
		panic("typekit: illegal use of non-zero View copied by value")
	}
}

func boundsErr(i, n int) error {
	return ErrOutOfBounds.New("index %d out of range [0:%d)", i, n)
}

// Len returns the number of elements.
func (v *View[T]) Len() int {
	v.copyCheck()
	return len(v.data)
}

// IsEmpty reports whether the View has no elements.
func (v *View[T]) IsEmpty() bool {
	return v.Len() == 0
}

// At returns the element at index i. It panics with an ErrOutOfBounds
// error when i is negative or at least Len.
func (v *View[T]) At(i int) T {
	v.copyCheck()
	if i < 0 || i >= len(v.data) {
		panic(boundsErr(i, len(v.data)))
	}
	return v.data[i]
}

// Ptr returns a pointer to the element at index i, allowing in-place
// mutation. It panics with an ErrOutOfBounds error when i is out of
// range.
func (v *View[T]) Ptr(i int) *T {
	v.copyCheck()
	if i < 0 || i >= len(v.data) {
		panic(boundsErr(i, len(v.data)))
	}
	return &v.data[i]
}

// Get returns the element at index i, or an ErrOutOfBounds error when i
// is out of range.
func (v *View[T]) Get(i int) (T, error) {
	v.copyCheck()
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, boundsErr(i, len(v.data))
	}
	return v.data[i], nil
}

// Set writes x at index i, or returns an ErrOutOfBounds error when i is
// out of range.
func (v *View[T]) Set(i int, x T) error {
	v.copyCheck()
	if i < 0 || i >= len(v.data) {
		return boundsErr(i, len(v.data))
	}
	v.data[i] = x
	return nil
}

// Values returns a sequence over the elements in index order. The
// sequence is lazy and restartable: each range starts from the first
// element again.
func (v *View[T]) Values() iter.Seq[T] {
	v.copyCheck()
	return func(yield func(T) bool) {
		v.copyCheck()
		for i := range v.data {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// All returns a sequence of index, element pairs in index order.
func (v *View[T]) All() iter.Seq2[int, T] {
	v.copyCheck()
	return func(yield func(int, T) bool) {
		v.copyCheck()
		for i := range v.data {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Refs returns a sequence of pointers to the elements in index order, for
// traversals that mutate in place.
func (v *View[T]) Refs() iter.Seq[*T] {
	v.copyCheck()
	return func(yield func(*T) bool) {
		v.copyCheck()
		for i := range v.data {
			if !yield(&v.data[i]) {
				return
			}
		}
	}
}

// Iter returns a pull iterator positioned before the first element. Each
// call returns a fresh cursor, so traversals are independent.
func (v *View[T]) Iter() *ViewIterator[T] {
	v.copyCheck()
	return &ViewIterator[T]{v: v}
}

// ViewIterator is a cursor over a View. It satisfies
// RandomAccessIterator.
type ViewIterator[T any] struct {
	v *View[T]
	i int
}

// Next returns the element under the cursor and advances past it. It
// reports false at the end.
func (it *ViewIterator[T]) Next() (T, bool) {
	it.v.copyCheck()
	if it.i >= len(it.v.data) {
		var zero T
		return zero, false
	}
	x := it.v.data[it.i]
	it.i++
	return x, true
}

// Prev steps the cursor back and returns the element it stepped over. It
// reports false at the front.
func (it *ViewIterator[T]) Prev() (T, bool) {
	it.v.copyCheck()
	if it.i <= 0 {
		var zero T
		return zero, false
	}
	it.i--
	return it.v.data[it.i], true
}

// Seek places the cursor so that the following Next returns the element
// at index i. i may equal Len, which parks the cursor at the end. It
// reports false and leaves the cursor unchanged when i is out of range.
func (it *ViewIterator[T]) Seek(i int) bool {
	it.v.copyCheck()
	if i < 0 || i > len(it.v.data) {
		return false
	}
	it.i = i
	return true
}

// Category reports random access: a View's storage is contiguous.
func (it *ViewIterator[T]) Category() Category {
	return CategoryRandomAccess
}
