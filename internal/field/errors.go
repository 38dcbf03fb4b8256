package field

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates two grids that must share a shape do not.
var ErrShapeMismatch = errors.New("field: grid shape mismatch")

// ShapeError wraps ErrShapeMismatch with the offending shapes.
type ShapeError struct {
	Op        string
	Want, Got [2]int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s (want %dx%d, got %dx%d)", e.Op, ErrShapeMismatch, e.Want[0], e.Want[1], e.Got[0], e.Got[1])
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func checkShape(op string, a, b Grid) error {
	if a.SameShape(b) {
		return nil
	}
	return &ShapeError{Op: op, Want: [2]int{a.Rows, a.Cols}, Got: [2]int{b.Rows, b.Cols}}
}
