package world

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize = errors.New("invalid world size")
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrOccupied    = errors.New("cell already occupied")
	ErrNoStructure = errors.New("no structure at position")
	ErrInvalidCell = errors.New("invalid cell state")
)

// OutOfBoundsError reports a position outside [0, Size) on either axis.
type OutOfBoundsError struct {
	Pos  Position
	Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %s not within [0,%d)", ErrOutOfBounds.Error(), e.Pos, e.Size)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
