package goppa

import (
	"github.com/ericlevine/isdgo/bitutil"
	"github.com/ericlevine/isdgo/gf"
)

// ParityCheck returns the binary parity-check matrix of the code, with t·m
// rows and n columns. Column j holds L_j^i / g(L_j) for i = 0..t-1, bit b of
// the i-th value in row i·m + b.
func (p *Params) ParityCheck() *bitutil.BitMatrix {
	f := p.Field
	m := f.Degree()
	h := bitutil.NewBitMatrixWithSize(p.N(), p.T*m)
	for j, x := range p.Support {
		v := f.Inverse(f.Evaluate(p.Poly, x))
		for i := 0; i < p.T; i++ {
			for b := 0; b < m; b++ {
				if v>>uint(b)&1 != 0 {
					h.Set(j, i*m+b)
				}
			}
			v = f.Multiply(v, x)
		}
	}
	return h
}

// SyndromeVector returns s_j = Σ g(L_i)^-1 · L_i^j, j = 0..t-1, summed over
// the set positions of r. Positions whose support element is zero or a root
// of g are skipped.
func (p *Params) SyndromeVector(r *bitutil.BitArray) []gf.Element {
	f := p.Field
	s := make([]gf.Element, p.T)
	for i := r.GetNextSet(0); i < r.Size() && i < p.N(); i = r.GetNextSet(i + 1) {
		x := p.Support[i]
		if x == 0 {
			continue
		}
		gx := f.Evaluate(p.Poly, x)
		if gx == 0 {
			continue
		}
		term := f.Inverse(gx)
		for j := range s {
			s[j] ^= term
			term = f.Multiply(term, x)
		}
	}
	return s
}
