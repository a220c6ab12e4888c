package types

import (
	"reflect"
	"sync"
)

// Category classifies how an iterator may move over its elements. The
// ordering is by capability: each category grants everything the previous
// one does.
type Category int

const (
	// CategoryUnknown marks values that declare no traversal behaviour.
	CategoryUnknown Category = iota

	// CategoryInput marks single-pass iterators whose traversal cannot
	// be restarted.
	CategoryInput

	// CategoryForward marks multi-pass iterators that move one step at a
	// time.
	CategoryForward

	// CategoryBidirectional marks iterators that can also step
	// backwards.
	CategoryBidirectional

	// CategoryRandomAccess marks iterators that can jump to any
	// position.
	CategoryRandomAccess
)

// AtLeastForward reports whether the category guarantees restartable
// forward traversal.
func (c Category) AtLeastForward() bool {
	return c >= CategoryForward
}

func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryForward:
		return "forward"
	case CategoryBidirectional:
		return "bidirectional"
	case CategoryRandomAccess:
		return "random access"
	default:
		return "unknown"
	}
}

// ForwardIterator yields elements of type T in order, one per Next call.
// Next reports false once the sequence is exhausted and on every call
// after that.
type ForwardIterator[T any] interface {
	Next() (T, bool)
}

// BidirectionalIterator is a ForwardIterator that can also step backwards.
// Prev undoes the most recent Next and reports false at the front.
type BidirectionalIterator[T any] interface {
	ForwardIterator[T]
	Prev() (T, bool)
}

// RandomAccessIterator is a BidirectionalIterator that can reposition
// itself to any index in constant time.
type RandomAccessIterator[T any] interface {
	BidirectionalIterator[T]
	Seek(i int) bool
}

// Categorized is implemented by iterators that declare their traversal
// category. The category must be a fixed property of the type, not of the
// instance: IsForwardIteratorOf caches per type and calls Category at most
// once for each.
type Categorized interface {
	Category() Category
}

type capabilityKey struct {
	iter reflect.Type
	elem reflect.Type
}

var capabilityCache sync.Map // capabilityKey -> bool

// IsForwardIteratorOf reports whether it can traverse elements of type T
// with at-least-forward guarantees. It is total: any value may be passed,
// and anything that is not such an iterator, including nil, reports
// false. A value whose declared Category is below CategoryForward reports
// false even when it has the right method set. Verdicts are cached per
// (iterator type, element type) pair.
func IsForwardIteratorOf[T any](it any) bool {
	if it == nil {
		return false
	}
	key := capabilityKey{
		iter: reflect.TypeOf(it),
		elem: reflect.TypeOf((*T)(nil)).Elem(),
	}
	if verdict, cached := capabilityCache.Load(key); cached {
		return verdict.(bool)
	}
	verdict := checkForwardIteratorOf[T](it)
	capabilityCache.Store(key, verdict)
	return verdict
}

func checkForwardIteratorOf[T any](it any) bool {
	if c, declared := it.(Categorized); declared && !c.Category().AtLeastForward() {
		return false
	}
	_, ok := it.(ForwardIterator[T])
	return ok
}

// CategoryOf returns the category it declares for itself, or
// CategoryUnknown when it declares none. It does not inspect method sets;
// use IsForwardIteratorOf to test traversal capability against an element
// type.
func CategoryOf(it any) Category {
	if c, ok := it.(Categorized); ok {
		return c.Category()
	}
	return CategoryUnknown
}
