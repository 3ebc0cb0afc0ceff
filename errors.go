package isdgo

import "errors"

var (
	// ErrInvalidParams is returned when decoding parameters are inconsistent,
	// for example a weight larger than the code length. Decoding never starts.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrNotFound is returned when a decoder exhausts its iteration or pattern
	// budget without finding an error vector. It is an expected outcome of a
	// probabilistic search, not a programming error.
	ErrNotFound = errors.New("no error vector found")

	// ErrWrongCode is returned when an algebraic decoder is asked to decode a
	// code it has no structure for.
	ErrWrongCode = errors.New("decoder does not support this code")
)
