// Package isdgo holds the shared contracts of the decoding engine: the
// algorithm enumeration, decoder options, observations and the GF(2)
// syndrome engine used by every decoder.
package isdgo

import (
	"fmt"
	"strings"
)

// Algorithm identifies a decoder.
type Algorithm int

const (
	AlgorithmPrange Algorithm = iota
	AlgorithmStern
	AlgorithmLeeBrickell
	AlgorithmBallCollision
	AlgorithmBJMM
	AlgorithmMMT
	AlgorithmPatterson
)

// Algorithms lists every decoder in display order.
var Algorithms = []Algorithm{
	AlgorithmPrange,
	AlgorithmStern,
	AlgorithmLeeBrickell,
	AlgorithmBallCollision,
	AlgorithmBJMM,
	AlgorithmMMT,
	AlgorithmPatterson,
}

// String returns the command-line name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmPrange:
		return "prange"
	case AlgorithmStern:
		return "stern"
	case AlgorithmLeeBrickell:
		return "lee-brickell"
	case AlgorithmBallCollision:
		return "ball-collision"
	case AlgorithmBJMM:
		return "bjmm"
	case AlgorithmMMT:
		return "mmt"
	case AlgorithmPatterson:
		return "patterson"
	default:
		return "unknown"
	}
}

// IsISD reports whether the algorithm is a generic information-set decoder
// that works on any parity-check matrix.
func (a Algorithm) IsISD() bool {
	return a >= AlgorithmPrange && a <= AlgorithmMMT
}

// ParseAlgorithm maps a name such as "stern" or "Lee-Brickell" to an
// Algorithm. Underscores and hyphens are interchangeable.
func ParseAlgorithm(name string) (Algorithm, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	switch norm {
	case "leebrickell", "lb":
		norm = "lee-brickell"
	case "ballcollision", "ball":
		norm = "ball-collision"
	}
	for _, a := range Algorithms {
		if a.String() == norm {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidParams, name)
}
