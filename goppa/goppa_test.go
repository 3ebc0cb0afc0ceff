package goppa

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
	"github.com/ericlevine/isdgo/gf"
)

type testCode struct {
	p *Params
	h *bitutil.BitMatrix
	g *bitutil.BitMatrix
}

func newTestCode(t *testing.T, n, tt int, seed uint64) testCode {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	p, err := NewParams(n, tt, rng)
	if err != nil {
		t.Fatalf("NewParams(%d, %d): %v", n, tt, err)
	}
	h := p.ParityCheck()
	g := bitutil.NullSpace(h)
	if g == nil {
		t.Fatalf("code (%d, t=%d) has no codewords", n, tt)
	}
	return testCode{p: p, h: h, g: g}
}

func (c testCode) codeword(rng *rand.Rand) *bitutil.BitArray {
	cw := bitutil.NewBitArray(c.g.Width())
	for y := 0; y < c.g.Height(); y++ {
		if rng.IntN(2) == 1 {
			cw.Xor(c.g.Row(y, nil))
		}
	}
	return cw
}

func TestFieldDegree(t *testing.T) {
	tests := []struct {
		n, t, want int
	}{
		{2, 2, 2},
		{7, 2, 3},
		{8, 2, 4},
		{15, 2, 4},
		{7, 1, 4},
		{31, 3, 5},
		{1024, 50, 11},
	}
	for _, tt := range tests {
		if got := FieldDegree(tt.n, tt.t); got != tt.want {
			t.Errorf("FieldDegree(%d, %d) = %d, want %d", tt.n, tt.t, got, tt.want)
		}
	}
}

func TestNewParams(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	p, err := NewParams(31, 3, rng)
	if err != nil {
		t.Fatal(err)
	}
	if p.N() != 31 || p.T != 3 || p.M() != 5 {
		t.Errorf("params n=%d t=%d m=%d", p.N(), p.T, p.M())
	}
	if !p.Field.IsIrreducible(p.Poly) || p.Poly.Lead() != 1 || p.Poly.Degree() != 3 {
		t.Errorf("goppa polynomial %v is not monic irreducible of degree 3", p.Poly)
	}
	seen := map[gf.Element]bool{}
	for _, x := range p.Support {
		if x == 0 || seen[x] || p.Field.Evaluate(p.Poly, x) == 0 {
			t.Errorf("bad support element %d", x)
		}
		seen[x] = true
	}
}

func TestNewParamsInvalid(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	for _, tc := range []struct{ n, t int }{{1, 2}, {10, 0}, {70000, 2}} {
		if _, err := NewParams(tc.n, tc.t, rng); !errors.Is(err, isdgo.ErrInvalidParams) {
			t.Errorf("NewParams(%d, %d) err = %v, want ErrInvalidParams", tc.n, tc.t, err)
		}
	}
}

func TestNewParamsFrom(t *testing.T) {
	f := gf.MustField(3)
	g := gf.Poly{1, 1, 1} // z^2 + z + 1, no roots in GF(8)
	if _, err := NewParamsFrom(f, g, []gf.Element{1, 2, 3, 4, 5, 6, 7}); err != nil {
		t.Errorf("valid params rejected: %v", err)
	}
	bad := [][]gf.Element{
		{0, 1, 2},
		{1, 2, 2},
		{1, 9},
	}
	for _, support := range bad {
		if _, err := NewParamsFrom(f, g, support); !errors.Is(err, isdgo.ErrInvalidParams) {
			t.Errorf("support %v: err = %v, want ErrInvalidParams", support, err)
		}
	}
	// z^2 + 1 = (z + 1)^2 has root 1.
	if _, err := NewParamsFrom(f, gf.Poly{1, 0, 1}, []gf.Element{1, 2}); !errors.Is(err, isdgo.ErrInvalidParams) {
		t.Errorf("root in support: err = %v, want ErrInvalidParams", err)
	}
	if _, err := NewParamsFrom(f, gf.Poly{5}, []gf.Element{1}); !errors.Is(err, isdgo.ErrInvalidParams) {
		t.Errorf("constant polynomial: err = %v, want ErrInvalidParams", err)
	}
}

func TestParityCheckMatchesSyndromeVector(t *testing.T) {
	c := newTestCode(t, 31, 3, 3)
	rng := rand.New(rand.NewPCG(3, 3))
	m := c.p.M()
	if c.h.Height() != 3*m || c.h.Width() != 31 {
		t.Fatalf("H is %dx%d, want %dx31", c.h.Height(), c.h.Width(), 3*m)
	}
	for trial := 0; trial < 20; trial++ {
		r := bitutil.NewBitArrayFromIndices(31, rng.Perm(31)[:1+rng.IntN(10)])
		s := c.p.SyndromeVector(r)
		bin := isdgo.Syndrome(r, c.h)
		for j, sj := range s {
			for b := 0; b < m; b++ {
				if bin.Get(j*m+b) != (sj>>uint(b)&1 == 1) {
					t.Fatalf("bit %d of s_%d disagrees with H·r", b, j)
				}
			}
		}
	}
}

func TestCodewordsHaveZeroSyndrome(t *testing.T) {
	c := newTestCode(t, 31, 3, 4)
	rng := rand.New(rand.NewPCG(4, 4))
	for i := 0; i < 10; i++ {
		cw := c.codeword(rng)
		for _, sj := range c.p.SyndromeVector(cw) {
			if sj != 0 {
				t.Fatalf("codeword %s has non-zero syndrome", cw)
			}
		}
	}
}

func TestPattersonSingleErrorT2(t *testing.T) {
	c := newTestCode(t, 15, 2, 5)
	rng := rand.New(rand.NewPCG(5, 5))
	cw := c.codeword(rng)
	for pos := 0; pos < 15; pos++ {
		e := bitutil.NewBitArrayFromIndices(15, []int{pos})
		got, err := Decode(isdgo.ApplyErrors(cw, e), c.h, c.p, 2, nil)
		if err != nil {
			t.Fatalf("pos %d: %v", pos, err)
		}
		if !got.Equals(e) {
			t.Errorf("pos %d: got %s, want %s", pos, got, e)
		}
	}
}

func TestPattersonCorrectsUpToT(t *testing.T) {
	for _, tt := range []int{2, 3, 4, 5} {
		c := newTestCode(t, 31, tt, uint64(10+tt))
		rng := rand.New(rand.NewPCG(uint64(tt), 77))
		for trial := 0; trial < 10; trial++ {
			weight := 1 + rng.IntN(tt)
			e := bitutil.NewBitArrayFromIndices(31, rng.Perm(31)[:weight])
			received := isdgo.ApplyErrors(c.codeword(rng), e)
			got, err := Decode(received, c.h, c.p, tt, nil)
			if err != nil {
				t.Fatalf("t=%d weight %d: %v", tt, weight, err)
			}
			if !got.Equals(e) {
				t.Errorf("t=%d weight %d: got %s, want %s", tt, weight, got, e)
			}
		}
	}
}

func TestPattersonNoError(t *testing.T) {
	c := newTestCode(t, 15, 2, 6)
	rng := rand.New(rand.NewPCG(6, 6))
	for _, solver := range []isdgo.KeyEquation{isdgo.KeyEquationEuclid, isdgo.KeyEquationBerlekampMassey} {
		got, err := Decode(c.codeword(rng), c.h, c.p, 2, &isdgo.Options{KeyEquation: solver})
		if err != nil {
			t.Fatalf("%s: %v", solver, err)
		}
		if !got.IsZero() || got.Size() != 15 {
			t.Errorf("%s: got %s, want zero vector", solver, got)
		}
	}
}

func TestPattersonBerlekampMassey(t *testing.T) {
	opts := &isdgo.Options{KeyEquation: isdgo.KeyEquationBerlekampMassey}
	c2 := newTestCode(t, 15, 2, 7)
	rng := rand.New(rand.NewPCG(7, 7))
	for pos := 0; pos < 15; pos++ {
		e := bitutil.NewBitArrayFromIndices(15, []int{pos})
		got, err := Decode(isdgo.ApplyErrors(c2.codeword(rng), e), c2.h, c2.p, 2, opts)
		if err != nil {
			t.Fatalf("t=2 pos %d: %v", pos, err)
		}
		if !got.Equals(e) {
			t.Errorf("t=2 pos %d: got %s, want %s", pos, got, e)
		}
	}
	// C(31,3) + 31 patterns fit in the default budget, so the fallback
	// always reaches the injected error.
	c3 := newTestCode(t, 31, 3, 8)
	for trial := 0; trial < 3; trial++ {
		e := bitutil.NewBitArrayFromIndices(31, rng.Perm(31)[:3])
		got, err := Decode(isdgo.ApplyErrors(c3.codeword(rng), e), c3.h, c3.p, 3, opts)
		if err != nil {
			t.Fatalf("t=3 trial %d: %v", trial, err)
		}
		if !got.Equals(e) {
			t.Errorf("t=3 trial %d: got %s, want %s", trial, got, e)
		}
	}
}

func TestPattersonPatternBudget(t *testing.T) {
	c := newTestCode(t, 31, 3, 9)
	rng := rand.New(rand.NewPCG(9, 9))
	// Weight 3 errors with w = 1: no candidate may exceed the bound, so
	// every path fails and the search ends within the budget.
	e := bitutil.NewBitArrayFromIndices(31, rng.Perm(31)[:3])
	opts := &isdgo.Options{MaxPatterns: 50}
	_, err := Decode(isdgo.ApplyErrors(c.codeword(rng), e), c.h, c.p, 1, opts)
	if !errors.Is(err, isdgo.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPattersonBruteForceHasOwnBudget(t *testing.T) {
	// On these codes the Berlekamp-Massey locator yields a partial root set
	// whose completion spends the whole budget. Brute force reaches {0, 1, 2}
	// after n + 1 patterns, so it must not inherit the spent count.
	opts := &isdgo.Options{KeyEquation: isdgo.KeyEquationBerlekampMassey}
	for _, seed := range []uint64{4, 12, 13} {
		c := newTestCode(t, 200, 3, seed)
		e := bitutil.NewBitArrayFromIndices(200, []int{0, 1, 2})
		got, err := Decode(e, c.h, c.p, 3, opts)
		if err != nil {
			t.Errorf("seed %d: %v", seed, err)
			continue
		}
		if !got.Equals(e) {
			t.Errorf("seed %d: got %s, want %s", seed, got, e)
		}
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	c := newTestCode(t, 15, 2, 10)
	r := bitutil.NewBitArray(15)
	if _, err := Decode(r, c.h, nil, 2, nil); !errors.Is(err, isdgo.ErrWrongCode) {
		t.Errorf("nil params: err = %v, want ErrWrongCode", err)
	}
	if _, err := Decode(bitutil.NewBitArray(14), c.h, c.p, 2, nil); !errors.Is(err, isdgo.ErrInvalidParams) {
		t.Errorf("short word: err = %v, want ErrInvalidParams", err)
	}
	if _, err := Decode(r, c.h, c.p, 16, nil); !errors.Is(err, isdgo.ErrInvalidParams) {
		t.Errorf("w > n: err = %v, want ErrInvalidParams", err)
	}
}

func TestBerlekampMasseyGeometricSequence(t *testing.T) {
	f := gf.MustField(3)
	a := gf.Element(5)
	seq := []gf.Element{1, a, f.Square(a), f.Pow(a, 3)}
	sigma := berlekampMassey(f, seq, 2)
	if !sigma.Equal(gf.Poly{a, 1}) {
		t.Errorf("sigma = %v, want [%d 1]", sigma, a)
	}
}

func TestExtendSyndrome(t *testing.T) {
	f := gf.MustField(4)
	s := []gf.Element{3, 7}
	ext := extendSyndrome(f, s, 2)
	if len(ext) != 4 || ext[2] != 0 || ext[3] != 0 {
		t.Errorf("t=2 extension = %v, want zero padding", ext)
	}
	s3 := []gf.Element{2, 3, 5}
	ext = extendSyndrome(f, s3, 3)
	if len(ext) != 6 {
		t.Fatalf("len = %d, want 6", len(ext))
	}
	// S_3 = S_1·S_2, S_4 = S_2·S_2 (S_1·S_3 uses a derived term and is skipped).
	if ext[3] != f.Multiply(3, 5) {
		t.Errorf("S_3 = %d, want %d", ext[3], f.Multiply(3, 5))
	}
	if ext[4] != f.Multiply(5, 5) {
		t.Errorf("S_4 = %d, want %d", ext[4], f.Multiply(5, 5))
	}
}

func TestPowerSumMatchesHorner(t *testing.T) {
	f := gf.MustField(5)
	rng := rand.New(rand.NewPCG(21, 21))
	for trial := 0; trial < 20; trial++ {
		p := make(gf.Poly, 1+rng.IntN(6))
		for i := range p {
			p[i] = gf.Element(rng.IntN(f.Size()))
		}
		for x := 0; x < f.Size(); x++ {
			if got, want := powerSum(f, p, gf.Element(x)), f.Evaluate(p, gf.Element(x)); got != want {
				t.Errorf("powerSum(%v, %d) = %d, want %d", p, x, got, want)
			}
		}
	}
}
