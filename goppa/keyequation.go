package goppa

import (
	"github.com/ericlevine/isdgo/gf"
)

// pattersonSyndrome converts s_j = Σ L^j / g(L) into the coefficients of
// S(z) = Σ 1/(z - L) mod g, using S_j = Σ_{k=j+1..t} g_k · s_{k-1-j}.
func (p *Params) pattersonSyndrome(s []gf.Element) gf.Poly {
	f := p.Field
	out := make(gf.Poly, p.T)
	for j := 0; j < p.T; j++ {
		var acc gf.Element
		for k := j + 1; k <= p.T; k++ {
			acc ^= f.Multiply(p.Poly.Coefficient(k), s[k-1-j])
		}
		out[j] = acc
	}
	return out.Trim()
}

// euclidLocator solves the key equation with the extended Euclidean
// algorithm and returns σ(z) = a(z)² + z·b(z)². ok is false when S(z) has no
// inverse modulo g, which only happens for inconsistent input.
func (p *Params) euclidLocator(s []gf.Element) (sigma gf.Poly, ok bool) {
	f, g := p.Field, p.Poly
	z := gf.Poly{0, 1}
	inv, err := f.InverseMod(p.pattersonSyndrome(s), g)
	if err != nil {
		return gf.Poly{1}, false
	}
	tz := gf.AddPoly(inv, z)
	if tz.IsZero() {
		return z, true
	}
	tau := f.SqrtMod(tz, g)

	r0, r1 := g, tau
	b0, b1 := gf.Poly{0}, gf.Poly{1}
	for r1.Degree() > p.T/2 {
		q, r := f.DivMod(r0, r1)
		r0, r1 = r1, r
		b0, b1 = b1, gf.AddPoly(b0, f.MulPoly(q, b1))
	}
	sigma = gf.AddPoly(f.MulPoly(r1, r1), f.MulPoly(z, f.MulPoly(b1, b1)))
	if sigma.IsZero() {
		return gf.Poly{1}, true
	}
	return sigma, true
}

// extendSyndrome pads s to length 2t. For t > 2 the new terms follow
// S_i = Σ_{j=1..i/2} S_j · S_{i-j}, using only the original terms.
func extendSyndrome(f *gf.Field, s []gf.Element, t int) []gf.Element {
	if len(s) >= 2*t {
		return s
	}
	orig := len(s)
	out := make([]gf.Element, 2*t)
	copy(out, s)
	if t <= 2 {
		return out
	}
	for i := orig; i < 2*t; i++ {
		var acc gf.Element
		for j := 1; j <= i/2; j++ {
			if j < orig && i-j < orig {
				acc ^= f.Multiply(out[j], out[i-j])
			}
		}
		out[i] = acc
	}
	return out
}

// berlekampMassey synthesizes the shortest LFSR generating seq and returns
// its connection polynomial reversed and truncated to degree t.
func berlekampMassey(f *gf.Field, seq []gf.Element, t int) gf.Poly {
	c := gf.Poly{1}
	b := gf.Poly{1}
	length := 0
	shift := 1
	last := gf.Element(1)
	for n := range seq {
		d := seq[n]
		for i := 1; i <= length && i < len(c); i++ {
			d ^= f.Multiply(c[i], seq[n-i])
		}
		if d == 0 {
			shift++
			continue
		}
		// c(z) -= d/last · z^shift · b(z)
		adj := gf.Monomial(shift, f.Multiply(d, f.Inverse(last)))
		next := gf.AddPoly(c, f.MulPoly(adj, b))
		if 2*length <= n {
			b = c
			length = n + 1 - length
			last = d
			shift = 1
		} else {
			shift++
		}
		c = next
	}
	sigma := c.Clone()
	for i, j := 0, len(sigma)-1; i < j; i, j = i+1, j-1 {
		sigma[i], sigma[j] = sigma[j], sigma[i]
	}
	if len(sigma) > t+1 {
		sigma = sigma[:t+1]
	}
	return sigma
}
