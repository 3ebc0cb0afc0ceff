// Package codegen builds the generator and parity-check matrices of the codes
// the decoders are run against.
package codegen

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
	"slices"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
	"github.com/ericlevine/isdgo/goppa"
)

// Code is a binary linear [n, k] code given by a k×n generator matrix G and
// a parity-check matrix H with G·Hᵗ = 0. Goppa is set only for Goppa codes.
type Code struct {
	Kind  Kind
	G     *bitutil.BitMatrix
	H     *bitutil.BitMatrix
	Goppa *goppa.Params
}

// N returns the code length.
func (c *Code) N() int { return c.G.Width() }

// K returns the code dimension.
func (c *Code) K() int { return c.G.Height() }

// Generate builds a random code of the given kind. w is the number of errors
// the code is meant to carry; only Goppa codes use it, as their degree t.
func Generate(kind Kind, n, k, w int, rng *rand.Rand) (*Code, error) {
	if k < 1 || k >= n {
		return nil, fmt.Errorf("codegen: %w: need 0 < k < n, got n=%d k=%d", isdgo.ErrInvalidParams, n, k)
	}
	if err := isdgo.CheckWeight(w, n); err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}
	switch kind {
	case Random:
		return randomCode(n, k, rng), nil
	case Hamming:
		return hammingCode(n, k)
	case Goppa:
		return goppaCode(n, k, w, rng)
	case QuasiCyclic:
		return quasiCyclicCode(n, k, rng)
	}
	return nil, fmt.Errorf("codegen: %w: unknown kind %v", isdgo.ErrInvalidParams, kind)
}

// systematic returns G = [I_k | P] and H = [Pᵀ | I_r] for an r×k matrix pt.
func systematic(kind Kind, pt *bitutil.BitMatrix) *Code {
	r, k := pt.Height(), pt.Width()
	n := k + r
	g := bitutil.NewBitMatrixWithSize(n, k)
	h := bitutil.NewBitMatrixWithSize(n, r)
	for i := 0; i < r; i++ {
		h.Set(k+i, i)
		for j := 0; j < k; j++ {
			if pt.Get(j, i) {
				h.Set(j, i)
				g.Set(k+i, j)
			}
		}
	}
	for j := 0; j < k; j++ {
		g.Set(j, j)
	}
	return &Code{Kind: kind, G: g, H: h}
}

func randomCode(n, k int, rng *rand.Rand) *Code {
	pt := bitutil.NewBitMatrixWithSize(k, n-k)
	for y := 0; y < n-k; y++ {
		for x := 0; x < k; x++ {
			if rng.IntN(2) == 1 {
				pt.Set(x, y)
			}
		}
	}
	return systematic(Random, pt)
}

// hammingCode takes every non-zero r-bit column, most significant bit in
// row 0, and moves the r unit columns to the right.
func hammingCode(n, k int) (*Code, error) {
	r := n - k
	if r < 2 || r > 30 || n != 1<<r-1 {
		return nil, fmt.Errorf("codegen: %w: hamming code needs n = 2^(n-k) - 1, got n=%d k=%d",
			isdgo.ErrInvalidParams, n, k)
	}
	pt := bitutil.NewBitMatrixWithSize(k, r)
	x := 0
	for v := 1; v <= n; v++ {
		if bits.OnesCount(uint(v)) == 1 {
			continue
		}
		for row := 0; row < r; row++ {
			if v>>(r-1-row)&1 == 1 {
				pt.Set(x, row)
			}
		}
		x++
	}
	return systematic(Hamming, pt), nil
}

// goppaCode row-reduces the Goppa parity-check matrix and takes G from its
// null space. When the code has dimension above k, the first k basis vectors
// span the returned subcode.
func goppaCode(n, k, t int, rng *rand.Rand) (*Code, error) {
	if t < 1 {
		return nil, fmt.Errorf("codegen: %w: goppa code needs w >= 1", isdgo.ErrInvalidParams)
	}
	m := goppa.FieldDegree(n, t)
	if k > n-m*t {
		return nil, fmt.Errorf("codegen: %w: k=%d exceeds n - m·t = %d", isdgo.ErrInvalidParams, k, n-m*t)
	}
	p, err := goppa.NewParams(n, t, rng)
	if err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}
	h := p.ParityCheck()
	rank := len(h.RowReduce())
	h = h.RowSlice(0, rank)
	g := bitutil.NullSpace(h)
	if g == nil || g.Height() < k {
		return nil, fmt.Errorf("codegen: %w: goppa code has dimension below %d", isdgo.ErrInvalidParams, k)
	}
	if g.Height() > k {
		g = g.RowSlice(0, k)
	}
	return &Code{Kind: Goppa, G: g, H: h, Goppa: p}, nil
}

// quasiCyclicCode builds H = [A_1 … A_q | I_b] from random b×b circulant
// blocks, b = n - k and q = k / b.
func quasiCyclicCode(n, k int, rng *rand.Rand) (*Code, error) {
	b := n - k
	if k%b != 0 {
		return nil, fmt.Errorf("codegen: %w: quasi-cyclic code needs k a multiple of n-k, got n=%d k=%d",
			isdgo.ErrInvalidParams, n, k)
	}
	pt := bitutil.NewBitMatrixWithSize(k, b)
	first := make([]bool, b)
	for block := 0; block < k/b; block++ {
		for i := range first {
			first[i] = rng.IntN(2) == 1
		}
		if !slices.Contains(first, true) {
			first[rng.IntN(b)] = true
		}
		for row := 0; row < b; row++ {
			for col := 0; col < b; col++ {
				if first[(col-row+b)%b] {
					pt.Set(block*b+col, row)
				}
			}
		}
	}
	return systematic(QuasiCyclic, pt), nil
}
