package isdgo

import (
	"fmt"

	"github.com/ericlevine/isdgo/bitutil"
)

// Syndrome returns H·e over GF(2), a vector of length H.Height().
func Syndrome(e *bitutil.BitArray, h *bitutil.BitMatrix) *bitutil.BitArray {
	return h.MulVector(e)
}

// PartialSyndrome returns the XOR of the columns of h selected by indices,
// which is the syndrome of the error vector supported on indices.
func PartialSyndrome(h *bitutil.BitMatrix, indices []int) *bitutil.BitArray {
	s := bitutil.NewBitArray(h.Height())
	for y := 0; y < h.Height(); y++ {
		parity := false
		for _, x := range indices {
			if h.Get(x, y) {
				parity = !parity
			}
		}
		if parity {
			s.Set(y)
		}
	}
	return s
}

// PartialSyndromeColumns is PartialSyndrome over columns precomputed with
// BitMatrix.Columns. rows is the column length.
func PartialSyndromeColumns(cols []*bitutil.BitArray, indices []int, rows int) *bitutil.BitArray {
	s := bitutil.NewBitArray(rows)
	for _, x := range indices {
		s.Xor(cols[x])
	}
	return s
}

// ApplyErrors returns codeword ⊕ e.
func ApplyErrors(codeword, e *bitutil.BitArray) *bitutil.BitArray {
	return codeword.Plus(e)
}

// Weight returns the Hamming weight of v.
func Weight(v *bitutil.BitArray) int {
	return v.Weight()
}

// Verify reports whether e has weight at most w and H·e equals target.
// Decoders call it on every candidate before returning it.
func Verify(e *bitutil.BitArray, h *bitutil.BitMatrix, target *bitutil.BitArray, w int) bool {
	return e.Size() == h.Width() && e.Weight() <= w && Syndrome(e, h).Equals(target)
}

// Observation is what a decoder sees: either a received word or a
// precomputed syndrome. When both are set the syndrome wins.
type Observation struct {
	Received *bitutil.BitArray
	Syndrome *bitutil.BitArray
}

// ReceivedWord returns an Observation of a received word.
func ReceivedWord(r *bitutil.BitArray) Observation {
	return Observation{Received: r}
}

// SyndromeOf returns an Observation of a precomputed syndrome.
func SyndromeOf(s *bitutil.BitArray) Observation {
	return Observation{Syndrome: s}
}

// Target returns the syndrome the decoder must reproduce, checking that the
// observation matches the dimensions of h.
func (o Observation) Target(h *bitutil.BitMatrix) (*bitutil.BitArray, error) {
	switch {
	case o.Syndrome != nil:
		if o.Syndrome.Size() != h.Height() {
			return nil, fmt.Errorf("%w: syndrome length %d, parity-check matrix has %d rows",
				ErrInvalidParams, o.Syndrome.Size(), h.Height())
		}
		return o.Syndrome, nil
	case o.Received != nil:
		if o.Received.Size() != h.Width() {
			return nil, fmt.Errorf("%w: received length %d, code length %d",
				ErrInvalidParams, o.Received.Size(), h.Width())
		}
		return Syndrome(o.Received, h), nil
	default:
		return nil, fmt.Errorf("%w: empty observation", ErrInvalidParams)
	}
}

// CheckWeight validates a target weight against the code length n.
func CheckWeight(w, n int) error {
	if w < 0 || w > n {
		return fmt.Errorf("%w: weight %d outside [0, %d]", ErrInvalidParams, w, n)
	}
	return nil
}
