package board

import (
	"errors"
	"fmt"
)

// Error represents a board validation or precondition failure.
//
// Validation errors (bad size, bad length, bad character, out-of-range
// value, duplicate in a house) are surfaced to the caller and never
// silently corrected. Precondition errors (placing on a filled cell)
// indicate caller misuse.
type Error struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes board errors.
type ErrorCode string

const (
	// ErrCodeBadSize indicates a size that is not a non-negative perfect square.
	ErrCodeBadSize ErrorCode = "BAD_SIZE"

	// ErrCodeBadLength indicates a puzzle string of the wrong length.
	ErrCodeBadLength ErrorCode = "BAD_LENGTH"

	// ErrCodeBadCharacter indicates a non-digit puzzle character.
	ErrCodeBadCharacter ErrorCode = "BAD_CHARACTER"

	// ErrCodeValueRange indicates a placed value outside 1..size.
	ErrCodeValueRange ErrorCode = "VALUE_RANGE"

	// ErrCodeDuplicate indicates a duplicate value within a house.
	ErrCodeDuplicate ErrorCode = "DUPLICATE_VALUE"

	// ErrCodeCellFilled indicates a placement on an already-filled cell.
	ErrCodeCellFilled ErrorCode = "CELL_FILLED"

	// ErrCodeOutOfBounds indicates a cell outside the board.
	ErrCodeOutOfBounds ErrorCode = "OUT_OF_BOUNDS"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsValidation reports whether err is a board validation error
// (as opposed to a placement precondition failure).
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool {
	var be *Error
	if !errors.As(err, &be) {
		return false
	}
	switch be.Code {
	case ErrCodeBadSize, ErrCodeBadLength, ErrCodeBadCharacter, ErrCodeValueRange, ErrCodeDuplicate:
		return true
	}
	return false
}
