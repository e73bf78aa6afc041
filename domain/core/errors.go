package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrDomain marks inputs outside an operation's mathematical domain.
	ErrDomain = errors.New("input outside metric domain")

	// ErrDimension marks buffer shape or length precondition violations.
	ErrDimension = errors.New("dimension mismatch")

	// ErrUnknownMetric marks an unrecognized metric kind tag.
	ErrUnknownMetric = errors.New("unknown metric kind")

	// ErrBadParameter marks an invalid or missing metric parameter.
	ErrBadParameter = errors.New("invalid metric parameter")
)

// Error constructors with context

// NewDomainError builds a domain error carrying the operation and the offending value.
func NewDomainError(op string, value float64, reason string) error {
	return fmt.Errorf("%w: %s(%v): %s", ErrDomain, op, value, reason)
}

// NewDimensionError builds a shape-precondition error carrying got/want sizes.
func NewDimensionError(op string, got, want int) error {
	return fmt.Errorf("%w: %s: got %d, want %d", ErrDimension, op, got, want)
}

// Error checking helpers
func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

func IsDimensionError(err error) bool {
	return errors.Is(err, ErrDimension)
}
