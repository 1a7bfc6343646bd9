package bounds

import (
	"errors"
	"fmt"
)

// ErrInvertedBounds matches every *InvertedBoundsError under errors.Is.
var ErrInvertedBounds = errors.New("inverted bounds")

// InvertedBoundsError is returned when a range is built with Min > Max.
type InvertedBoundsError[T any] struct {
	Min T
	Max T
}

func (e *InvertedBoundsError[T]) Error() string {
	return fmt.Sprintf("range min value (%v) must be less than or equal to max value (%v)", e.Min, e.Max)
}

func (e *InvertedBoundsError[T]) Is(target error) bool {
	return target == ErrInvertedBounds
}
