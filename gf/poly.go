package gf

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// Poly is a polynomial over GF(2^m). Coefficients are ordered from lowest to
// highest degree, so p[i] is the coefficient of z^i. Operations return
// trimmed polynomials and never modify their inputs.
type Poly []Element

// Trim returns p without high-order zero coefficients. At least one
// coefficient is kept, so the zero polynomial is Poly{0}.
func (p Poly) Trim() Poly {
	n := len(p)
	for n > 1 && p[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Poly{0}
	}
	return p[:n]
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// IsZero returns true if every coefficient is zero.
func (p Poly) IsZero() bool {
	return p.Degree() < 0
}

// Coefficient returns the coefficient of z^i, or 0 past the end of p.
func (p Poly) Coefficient(i int) Element {
	if i < 0 || i >= len(p) {
		return 0
	}
	return p[i]
}

// Lead returns the highest non-zero coefficient, or 0 for the zero polynomial.
func (p Poly) Lead() Element {
	d := p.Degree()
	if d < 0 {
		return 0
	}
	return p[d]
}

// Equal reports whether p and q are the same polynomial, ignoring high-order zeros.
func (p Poly) Equal(q Poly) bool {
	n := max(len(p), len(q))
	for i := 0; i < n; i++ {
		if p.Coefficient(i) != q.Coefficient(i) {
			return false
		}
	}
	return true
}

// Clone returns a copy of p.
func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	copy(out, p)
	return out
}

// String returns the coefficients in ascending order, e.g. "[1 0 3]".
func (p Poly) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range p.Trim() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Monomial returns c·z^degree.
func Monomial(degree int, c Element) Poly {
	if degree < 0 {
		panic("gf: negative degree")
	}
	if c == 0 {
		return Poly{0}
	}
	p := make(Poly, degree+1)
	p[degree] = c
	return p
}

// AddPoly returns a + b. Inputs may have different lengths.
func AddPoly(a, b Poly) Poly {
	if len(a) < len(b) {
		a, b = b, a
	}
	sum := a.Clone()
	for i, c := range b {
		sum[i] ^= c
	}
	return sum.Trim()
}

// MulPoly returns a * b.
func (f *Field) MulPoly(a, b Poly) Poly {
	a, b = a.Trim(), b.Trim()
	if a.IsZero() || b.IsZero() {
		return Poly{0}
	}
	product := make(Poly, len(a)+len(b)-1)
	for i, ac := range a {
		if ac == 0 {
			continue
		}
		for j, bc := range b {
			product[i+j] ^= f.Multiply(ac, bc)
		}
	}
	return product.Trim()
}

// Scale returns c * p.
func (f *Field) Scale(p Poly, c Element) Poly {
	if c == 0 {
		return Poly{0}
	}
	out := make(Poly, len(p))
	for i, pc := range p {
		out[i] = f.Multiply(pc, c)
	}
	return out.Trim()
}

// DivMod divides a by b and returns the quotient and remainder. It panics if
// b is the zero polynomial.
func (f *Field) DivMod(a, b Poly) (Poly, Poly) {
	db := b.Degree()
	if db < 0 {
		panic("gf: divide by zero polynomial")
	}
	da := a.Degree()
	if da < db {
		return Poly{0}, a.Clone().Trim()
	}
	inv := f.Inverse(b[db])
	r := a[:da+1].Clone()
	q := make(Poly, da-db+1)
	for i := da; i >= db; i-- {
		c := r[i]
		if c == 0 {
			continue
		}
		s := f.Multiply(c, inv)
		q[i-db] = s
		for j := 0; j <= db; j++ {
			r[i-db+j] ^= f.Multiply(s, b[j])
		}
	}
	return q.Trim(), r[:db].Trim()
}

// Mod returns a mod b. It panics if b is the zero polynomial.
func (f *Field) Mod(a, b Poly) Poly {
	_, r := f.DivMod(a, b)
	return r
}

// Monic returns p scaled so its leading coefficient is 1.
func (f *Field) Monic(p Poly) Poly {
	lead := p.Lead()
	if lead == 0 || lead == 1 {
		return p.Trim()
	}
	return f.Scale(p, f.Inverse(lead))
}

// GCD returns the monic greatest common divisor of a and b.
func (f *Field) GCD(a, b Poly) Poly {
	a, b = a.Trim(), b.Trim()
	for !b.IsZero() {
		a, b = b, f.Mod(a, b)
	}
	return f.Monic(a)
}

// InverseMod returns a^-1 mod g using the extended Euclidean algorithm.
func (f *Field) InverseMod(a, g Poly) (Poly, error) {
	r0, r1 := g.Trim(), f.Mod(a, g)
	s0, s1 := Poly{0}, Poly{1}
	for r1.Degree() > 0 {
		q, r := f.DivMod(r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, AddPoly(s0, f.MulPoly(q, s1))
	}
	if r1.IsZero() {
		return nil, ErrNotInvertible
	}
	return f.Mod(f.Scale(s1, f.Inverse(r1[0])), g), nil
}

// SquareMod returns p^2 mod g.
func (f *Field) SquareMod(p, g Poly) Poly {
	return f.Mod(f.MulPoly(p, p), g)
}

// SqrtZ returns the square root of z modulo an irreducible g, which is
// z^(2^(m·deg g - 1)) mod g.
func (f *Field) SqrtZ(g Poly) Poly {
	r := f.Mod(Poly{0, 1}, g)
	for i := 1; i < f.m*g.Degree(); i++ {
		r = f.SquareMod(r, g)
	}
	return r
}

// SqrtMod returns the square root of p modulo an irreducible g. p is split as
// E(z)^2 + z·O(z)^2, taking square roots of its even and odd coefficients,
// and the result is E + sqrt(z)·O mod g.
func (f *Field) SqrtMod(p, g Poly) Poly {
	p = f.Mod(p, g)
	even := make(Poly, (len(p)+1)/2)
	odd := make(Poly, (len(p)+1)/2)
	for i, c := range p {
		if i%2 == 0 {
			even[i/2] = f.Sqrt(c)
		} else {
			odd[i/2] = f.Sqrt(c)
		}
	}
	return f.Mod(AddPoly(even, f.MulPoly(f.SqrtZ(g), odd)), g)
}

// IsIrreducible reports whether g is irreducible over the field, using the
// Ben-Or test: gcd(z^(q^i) - z, g) = 1 for all i <= deg(g)/2, with q = 2^m.
func (f *Field) IsIrreducible(g Poly) bool {
	t := g.Degree()
	if t < 1 {
		return false
	}
	if t == 1 {
		return true
	}
	z := Poly{0, 1}
	x := f.Mod(z, g)
	for i := 1; i <= t/2; i++ {
		for j := 0; j < f.m; j++ {
			x = f.SquareMod(x, g)
		}
		if f.GCD(AddPoly(x, z), g).Degree() != 0 {
			return false
		}
	}
	return true
}

// RandomMonicIrreducible draws random monic polynomials of degree t until one
// is irreducible, giving up after attempts tries.
func (f *Field) RandomMonicIrreducible(t, attempts int, rng *rand.Rand) (Poly, error) {
	if t < 1 {
		return nil, ErrNoIrreducible
	}
	for range attempts {
		g := make(Poly, t+1)
		g[t] = 1
		for i := 0; i < t; i++ {
			g[i] = Element(rng.IntN(f.size))
		}
		if g[0] == 0 {
			continue
		}
		if f.IsIrreducible(g) {
			return g, nil
		}
	}
	return nil, ErrNoIrreducible
}
