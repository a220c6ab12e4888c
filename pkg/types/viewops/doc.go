// Package viewops provides traversal algorithms over View[T] and over
// plain forward iterators.
//
// Highlights:
// - Sum/Min/Max: numeric and ordered reductions
// - Index/Contains/Count: membership queries on comparable elements
// - Fill/Apply: in-place mutation through the view
// - Collect/Equal: bridge back to plain slices
// - Drain/Advance: consume any ForwardIterator
package viewops
