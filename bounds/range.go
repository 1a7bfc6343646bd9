// Package bounds provides an immutable inclusive range over ordered values.
package bounds

import (
	"cmp"
	"fmt"
)

// Range is the closed interval [Min, Max]. Both bounds are inclusive, so the
// range from 0 to 1 contains 0 and 1.
//
// A Range is only valid when built with New or NewFunc; the zero Range has no
// ordering and its methods panic.
//
// Ranges are values and may be copied freely, but they hold their ordering
// func and so cannot be compared with ==. Compare Min and Max instead.
type Range[T any] struct {
	min T
	max T
	cmp func(a, b T) int
}

// New returns the range [min, max] ordered by cmp.Compare.
// It fails with an *InvertedBoundsError when min > max.
func New[T cmp.Ordered](min, max T) (Range[T], error) {
	return NewFunc(min, max, cmp.Compare[T])
}

// NewFunc returns the range [min, max] ordered by compare, which must return a
// negative number when a < b, a positive number when a > b and zero otherwise.
func NewFunc[T any](min, max T, compare func(a, b T) int) (Range[T], error) {
	if compare(min, max) > 0 {
		return Range[T]{}, &InvertedBoundsError[T]{Min: min, Max: max}
	}
	return Range[T]{min: min, max: max, cmp: compare}, nil
}

// MustNew is like New but panics on inverted bounds.
func MustNew[T cmp.Ordered](min, max T) Range[T] {
	r, err := New(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// MustNewFunc is like NewFunc but panics on inverted bounds.
func MustNewFunc[T any](min, max T, compare func(a, b T) int) Range[T] {
	r, err := NewFunc(min, max, compare)
	if err != nil {
		panic(err)
	}
	return r
}

// Valid reports whether r was built by a constructor.
func (r Range[T]) Valid() bool { return r.cmp != nil }

func (r Range[T]) Min() T { return r.min }
func (r Range[T]) Max() T { return r.max }

// LessThanMin reports whether v is strictly below the range.
func (r Range[T]) LessThanMin(v T) bool {
	return r.cmp(v, r.min) < 0
}

// GreaterThanMax reports whether v is strictly above the range.
func (r Range[T]) GreaterThanMax(v T) bool {
	return r.cmp(v, r.max) > 0
}

func (r Range[T]) Contains(v T) bool {
	return !r.LessThanMin(v) && !r.GreaterThanMax(v)
}

// ContainsRange reports whether other is a sub-range of r, bounds included.
func (r Range[T]) ContainsRange(other Range[T]) bool {
	return r.Contains(other.min) && r.Contains(other.max)
}

// Clamp returns v when it is inside the range, otherwise the nearest bound.
func (r Range[T]) Clamp(v T) T {
	switch {
	case r.LessThanMin(v):
		return r.min
	case r.GreaterThanMax(v):
		return r.max
	}
	return v
}

func (r Range[T]) String() string {
	return fmt.Sprintf("Range from %v to %v", r.min, r.max)
}
