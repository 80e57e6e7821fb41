// Package vineerr defines the sentinel error taxonomy shared by every
// public package in the module. All validation happens at the API
// boundary; errors are constructed here so that callers can use
// errors.Is against a small, stable set of sentinels regardless of
// which package raised them.
package vineerr

import (
	"errors"
	"fmt"
)

// Sentinel categories. Wrap one of these with fmt.Errorf("%w: ...", Sentinel)
// to preserve errors.Is while attaching operation-specific detail.
var (
	// ErrDomain covers inputs outside the unit cube, wrong dimensions,
	// wrong column counts, and non-positive sample sizes.
	ErrDomain = errors.New("vinecop: domain error")

	// ErrParameter covers bad parameter vectors, invalid rotations, and
	// unknown family/criterion/method strings.
	ErrParameter = errors.New("vinecop: parameter error")

	// ErrStructure covers R-vine matrices failing an axiom, or a
	// pair-copula staircase whose shape disagrees with the matrix.
	ErrStructure = errors.New("vinecop: structure error")

	// ErrState covers diagnostics requested on an object never fit to data.
	ErrState = errors.New("vinecop: state error")

	// ErrNumeric covers optimizer and quadrature failures.
	ErrNumeric = errors.New("vinecop: numeric error")

	// ErrCancelled is returned when a caller-supplied interrupt hook fires.
	ErrCancelled = errors.New("vinecop: cancelled")
)

// Domain builds a DomainError naming the operation and offending value.
func Domain(op, msg string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrDomain, op, fmt.Sprintf(msg, args...))
}

// Parameter builds a ParameterError naming the operation and offending value.
func Parameter(op, msg string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrParameter, op, fmt.Sprintf(msg, args...))
}

// Structure builds a StructureError naming the operation and offending value.
func Structure(op, msg string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrStructure, op, fmt.Sprintf(msg, args...))
}

// State builds a StateError naming the operation that required a fit.
func State(op, msg string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrState, op, fmt.Sprintf(msg, args...))
}

// Numeric builds a NumericError naming the failing routine.
func Numeric(op, msg string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrNumeric, op, fmt.Sprintf(msg, args...))
}

// Cancelled builds a Cancelled error naming the operation that was
// interrupted.
func Cancelled(op string) error {
	return fmt.Errorf("%w: %s", ErrCancelled, op)
}
