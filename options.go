package isdgo

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// KeyEquation selects how the Patterson decoder solves the key equation.
type KeyEquation int

const (
	// KeyEquationEuclid runs the extended Euclidean algorithm on the Goppa
	// polynomial and the square root of T(z)+z.
	KeyEquationEuclid KeyEquation = iota

	// KeyEquationBerlekampMassey runs LFSR synthesis over the syndrome
	// extended to length 2t. It is experimental and falls back to bounded
	// brute force more often than the Euclidean solver.
	KeyEquationBerlekampMassey
)

// String returns the command-line name of the solver.
func (k KeyEquation) String() string {
	switch k {
	case KeyEquationEuclid:
		return "euclid"
	case KeyEquationBerlekampMassey:
		return "bm"
	default:
		return "unknown"
	}
}

// ParseKeyEquation maps "euclid" or "bm" (also "berlekamp-massey") to a
// KeyEquation.
func ParseKeyEquation(name string) (KeyEquation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclid", "euclidean":
		return KeyEquationEuclid, nil
	case "bm", "berlekamp-massey", "berlekamp_massey":
		return KeyEquationBerlekampMassey, nil
	}
	return 0, fmt.Errorf("%w: unknown key equation solver %q", ErrInvalidParams, name)
}

// Default option values.
const (
	DefaultMaxIterations = 100
	DefaultListSize      = 256
	DefaultPartitions    = 2
	DefaultMaxPatterns   = 10000
)

// Options configures a decoder invocation. A nil *Options or zero fields
// select the defaults.
type Options struct {
	// MaxIterations caps the outer retry loop of the ISD decoders.
	MaxIterations int

	// ListSize is the number of random samples per half or quarter drawn by
	// Ball-Collision and BJMM.
	ListSize int

	// Partitions is the MMT partition count p.
	Partitions int

	// L1 and L2 are the MMT sample counts for the first and second half.
	L1, L2 int

	// MaxPatterns caps the Patterson completion and brute-force searches.
	MaxPatterns int

	// KeyEquation selects the Patterson key-equation solver.
	KeyEquation KeyEquation

	// Rand is the randomness source. Decoders draw every random choice from
	// it, so a seeded source gives reproducible runs.
	Rand *rand.Rand
}

// WithDefaults returns a copy of o with unset fields filled in. A nil Rand is
// replaced by a fresh randomly seeded generator.
func (o *Options) WithDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.MaxIterations <= 0 {
		out.MaxIterations = DefaultMaxIterations
	}
	if out.ListSize <= 0 {
		out.ListSize = DefaultListSize
	}
	if out.Partitions == 0 {
		out.Partitions = DefaultPartitions
	}
	if out.L1 <= 0 {
		out.L1 = DefaultListSize
	}
	if out.L2 <= 0 {
		out.L2 = DefaultListSize
	}
	if out.MaxPatterns <= 0 {
		out.MaxPatterns = DefaultMaxPatterns
	}
	if out.Rand == nil {
		out.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return out
}
