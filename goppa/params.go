// Package goppa builds binary Goppa codes and decodes them with Patterson's
// algorithm.
package goppa

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/gf"
)

// irreducibleAttempts bounds the random search for a Goppa polynomial.
const irreducibleAttempts = 10000

// Params describes a binary Goppa code: a monic irreducible polynomial g of
// degree T over Field and a support of distinct non-zero field elements,
// none of them a root of g. Params is immutable once built.
type Params struct {
	Field   *gf.Field
	Poly    gf.Poly
	Support []gf.Element
	T       int
}

// FieldDegree returns the smallest extension degree m >= 2 whose field has
// enough non-zero elements outside the roots of a degree-t polynomial to
// hold a support of length n.
func FieldDegree(n, t int) int {
	m := max(2, bits.Len(uint(n)))
	if t == 1 && (1<<m)-2 < n {
		m++
	}
	return m
}

// NewParams picks a random Goppa code of length n correcting t errors.
func NewParams(n, t int, rng *rand.Rand) (*Params, error) {
	if n < 2 || t < 1 {
		return nil, fmt.Errorf("goppa: %w: n=%d t=%d", isdgo.ErrInvalidParams, n, t)
	}
	m := FieldDegree(n, t)
	field, err := gf.NewField(m)
	if err != nil {
		return nil, fmt.Errorf("goppa: %w: length %d needs GF(2^%d): %v", isdgo.ErrInvalidParams, n, m, err)
	}
	g, err := field.RandomMonicIrreducible(t, irreducibleAttempts, rng)
	if err != nil {
		return nil, fmt.Errorf("goppa: degree %d over %s: %w", t, field, err)
	}
	var candidates []gf.Element
	for x := 1; x < field.Size(); x++ {
		if field.Evaluate(g, gf.Element(x)) != 0 {
			candidates = append(candidates, gf.Element(x))
		}
	}
	if len(candidates) < n {
		return nil, fmt.Errorf("goppa: %w: only %d support candidates for length %d", isdgo.ErrInvalidParams, len(candidates), n)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	Logger().Debug("goppa code chosen", zap.Int("n", n), zap.Int("t", t), zap.Int("m", m), zap.Stringer("g", g))
	return &Params{Field: field, Poly: g, Support: candidates[:n], T: t}, nil
}

// NewParamsFrom validates a fixed polynomial and support.
func NewParamsFrom(field *gf.Field, g gf.Poly, support []gf.Element) (*Params, error) {
	g = g.Trim()
	t := g.Degree()
	if t < 1 {
		return nil, fmt.Errorf("goppa: %w: polynomial %v has degree < 1", isdgo.ErrInvalidParams, g)
	}
	seen := make(map[gf.Element]bool, len(support))
	for i, x := range support {
		switch {
		case int(x) >= field.Size():
			return nil, fmt.Errorf("goppa: %w: support[%d] = %d outside %s", isdgo.ErrInvalidParams, i, x, field)
		case x == 0:
			return nil, fmt.Errorf("goppa: %w: support[%d] is zero", isdgo.ErrInvalidParams, i)
		case seen[x]:
			return nil, fmt.Errorf("goppa: %w: support[%d] = %d repeated", isdgo.ErrInvalidParams, i, x)
		case field.Evaluate(g, x) == 0:
			return nil, fmt.Errorf("goppa: %w: support[%d] = %d is a root of g", isdgo.ErrInvalidParams, i, x)
		}
		seen[x] = true
	}
	return &Params{Field: field, Poly: g, Support: support, T: t}, nil
}

// N returns the code length.
func (p *Params) N() int { return len(p.Support) }

// M returns the extension degree of the field.
func (p *Params) M() int { return p.Field.Degree() }
