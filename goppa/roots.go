package goppa

import "github.com/ericlevine/isdgo/gf"

// findRoots returns the support positions i with σ(L_i) = 0. With lax set,
// a position also counts when the power-sum evaluation Σ σ_k·L_i^k vanishes.
// Both compute the same value of σ, so lax never adds a root; it only
// cross-checks Horner's method.
func (p *Params) findRoots(sigma gf.Poly, lax bool) []int {
	f := p.Field
	if sigma.Degree() < 1 {
		return nil
	}
	var roots []int
	for i, x := range p.Support {
		if f.Evaluate(sigma, x) == 0 || lax && powerSum(f, sigma, x) == 0 {
			roots = append(roots, i)
		}
	}
	return roots
}

func powerSum(f *gf.Field, p gf.Poly, x gf.Element) gf.Element {
	var acc gf.Element
	for k, c := range p {
		if c != 0 {
			acc ^= f.Multiply(c, f.Pow(x, k))
		}
	}
	return acc
}
