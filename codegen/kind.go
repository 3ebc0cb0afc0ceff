package codegen

import (
	"fmt"
	"strings"

	"github.com/ericlevine/isdgo"
)

// Kind enumerates the families of codes Generate can build.
type Kind int

const (
	Random Kind = iota
	Hamming
	Goppa
	QuasiCyclic
)

// Kinds lists every code family in declaration order.
var Kinds = []Kind{Random, Hamming, Goppa, QuasiCyclic}

func (k Kind) String() string {
	switch k {
	case Random:
		return "random"
	case Hamming:
		return "hamming"
	case Goppa:
		return "goppa"
	case QuasiCyclic:
		return "qc"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a command-line name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return Random, nil
	case "hamming":
		return Hamming, nil
	case "goppa":
		return Goppa, nil
	case "qc", "quasi-cyclic", "quasicyclic":
		return QuasiCyclic, nil
	}
	return 0, fmt.Errorf("%w: unknown code type %q", isdgo.ErrInvalidParams, s)
}
