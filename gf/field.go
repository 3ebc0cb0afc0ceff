// Package gf implements arithmetic in the binary extension fields GF(2^m),
// 2 <= m <= 16, and polynomials with coefficients in those fields.
package gf

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrFieldDegree is returned for an extension degree outside [2, 16].
	ErrFieldDegree = errors.New("gf: extension degree must be between 2 and 16")

	// ErrNotInvertible is returned when a polynomial shares a factor with the modulus.
	ErrNotInvertible = errors.New("gf: polynomial not invertible")

	// ErrNoIrreducible is returned when random search gives up on finding an
	// irreducible polynomial.
	ErrNoIrreducible = errors.New("gf: no irreducible polynomial found")
)

// Element is a field element, the bit-packed coefficients of a polynomial
// over GF(2) of degree below m.
type Element uint16

// Primitive reduction polynomials indexed by extension degree.
var reductionPolys = [...]uint32{
	2:  0x7,     // x^2 + x + 1
	3:  0xB,     // x^3 + x + 1
	4:  0x13,    // x^4 + x + 1
	5:  0x25,    // x^5 + x^2 + 1
	6:  0x43,    // x^6 + x + 1
	7:  0x89,    // x^7 + x^3 + 1
	8:  0x11D,   // x^8 + x^4 + x^3 + x^2 + 1
	9:  0x211,   // x^9 + x^4 + 1
	10: 0x409,   // x^10 + x^3 + 1
	11: 0x805,   // x^11 + x^2 + 1
	12: 0x1069,  // x^12 + x^6 + x^5 + x^3 + 1
	13: 0x201B,  // x^13 + x^4 + x^3 + x + 1
	14: 0x4443,  // x^14 + x^10 + x^6 + x + 1
	15: 0x8003,  // x^15 + x + 1
	16: 0x1100B, // x^16 + x^12 + x^3 + x + 1
}

// Field is GF(2^m) with a fixed reduction polynomial. A Field is immutable
// and safe for concurrent use.
type Field struct {
	m    int
	poly uint32
	size int
}

// NewField returns GF(2^m).
func NewField(m int) (*Field, error) {
	if m < 2 || m > 16 {
		return nil, fmt.Errorf("%w: got %d", ErrFieldDegree, m)
	}
	return &Field{m: m, poly: reductionPolys[m], size: 1 << m}, nil
}

// MustField is like NewField but panics on an invalid degree.
func MustField(m int) *Field {
	f, err := NewField(m)
	if err != nil {
		panic(err)
	}
	return f
}

// Degree returns the extension degree m.
func (f *Field) Degree() int { return f.m }

// Size returns the number of field elements, 2^m.
func (f *Field) Size() int { return f.size }

// ReductionPoly returns the bit-packed reduction polynomial.
func (f *Field) ReductionPoly() uint32 { return f.poly }

// Add returns a + b, which is also a - b in characteristic 2.
func Add(a, b Element) Element {
	return a ^ b
}

// Multiply returns a * b in this field.
func (f *Field) Multiply(a, b Element) Element {
	x, y := uint32(a), uint32(b)
	var res uint32
	high := uint32(1) << uint(f.m)
	for y != 0 {
		if y&1 != 0 {
			res ^= x
		}
		y >>= 1
		x <<= 1
		if x&high != 0 {
			x ^= f.poly
		}
	}
	return Element(res)
}

// Square returns a * a.
func (f *Field) Square(a Element) Element {
	return f.Multiply(a, a)
}

// Pow returns a^e for e >= 0, with 0^0 = 1.
func (f *Field) Pow(a Element, e int) Element {
	result := Element(1)
	for e > 0 {
		if e&1 != 0 {
			result = f.Multiply(result, a)
		}
		a = f.Multiply(a, a)
		e >>= 1
	}
	return result
}

// Inverse returns the multiplicative inverse of a using the extended
// Euclidean algorithm on bit-packed polynomials. It panics for a = 0.
func (f *Field) Inverse(a Element) Element {
	if a == 0 {
		panic("gf: inverse(0)")
	}
	u, v := uint32(a), f.poly
	g1, g2 := uint32(1), uint32(0)
	for u != 1 {
		j := bits.Len32(u) - bits.Len32(v)
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		u ^= v << uint(j)
		g1 ^= g2 << uint(j)
	}
	return Element(g1)
}

// Sqrt returns the unique b with b*b = a, which is a^(2^(m-1)).
func (f *Field) Sqrt(a Element) Element {
	for i := 1; i < f.m; i++ {
		a = f.Multiply(a, a)
	}
	return a
}

// Evaluate evaluates p at x using Horner's method. Evaluate(p, 0) is p[0].
func (f *Field) Evaluate(p Poly, x Element) Element {
	if len(p) == 0 {
		return 0
	}
	if x == 0 {
		return p[0]
	}
	result := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		result = f.Multiply(result, x) ^ p[i]
	}
	return result
}

// String returns a string representation.
func (f *Field) String() string {
	return fmt.Sprintf("GF(2^%d,0x%x)", f.m, f.poly)
}
