package goppa

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
	"github.com/ericlevine/isdgo/gf"
)

// Decode recovers the error pattern of a received word with Patterson's
// algorithm. h is the code's parity-check matrix, used to verify every
// candidate, and w bounds the accepted error weight.
//
// The key equation is solved as selected by opts.KeyEquation. When the error
// locator yields only part of the errors and t > 2, the missing positions
// are searched combinatorially. When the algebraic path fails and t <= 4,
// single positions and then all t-subsets are tried. Each search gets its own
// opts.MaxPatterns budget. A received codeword decodes to the zero vector.
func Decode(received *bitutil.BitArray, h *bitutil.BitMatrix, p *Params, w int, opts *isdgo.Options) (*bitutil.BitArray, error) {
	if p == nil {
		return nil, fmt.Errorf("patterson: %w: no Goppa parameters", isdgo.ErrWrongCode)
	}
	if h == nil || received == nil {
		return nil, fmt.Errorf("patterson: %w: nil input", isdgo.ErrInvalidParams)
	}
	n := p.N()
	if received.Size() != n || h.Width() != n {
		return nil, fmt.Errorf("patterson: %w: received %d, H width %d, support %d",
			isdgo.ErrInvalidParams, received.Size(), h.Width(), n)
	}
	if err := isdgo.CheckWeight(w, n); err != nil {
		return nil, fmt.Errorf("patterson: %w", err)
	}
	d := &pattersonDecoder{
		p:      p,
		h:      h,
		target: isdgo.Syndrome(received, h),
		w:      w,
		opts:   opts.WithDefaults(),
		log:    Logger().With(zap.Int("t", p.T), zap.Int("n", n)),
	}
	return d.decode(received)
}

type pattersonDecoder struct {
	p        *Params
	h        *bitutil.BitMatrix
	target   *bitutil.BitArray
	w        int
	opts     isdgo.Options
	log      *zap.Logger
	patterns int
}

func (d *pattersonDecoder) decode(received *bitutil.BitArray) (*bitutil.BitArray, error) {
	s := d.p.SyndromeVector(received)
	if !slices.ContainsFunc(s, func(c gf.Element) bool { return c != 0 }) {
		d.log.Debug("received word is a codeword")
		return bitutil.NewBitArray(d.p.N()), nil
	}

	var sigma gf.Poly
	lax := false
	switch d.opts.KeyEquation {
	case isdgo.KeyEquationBerlekampMassey:
		sigma = berlekampMassey(d.p.Field, extendSyndrome(d.p.Field, s, d.p.T), d.p.T)
		lax = true
	default:
		var ok bool
		sigma, ok = d.p.euclidLocator(s)
		if !ok {
			d.log.Warn("syndrome polynomial not invertible modulo g")
		}
	}
	found := d.p.findRoots(sigma, lax)
	d.log.Debug("error locator",
		zap.Stringer("solver", d.opts.KeyEquation),
		zap.Stringer("sigma", sigma),
		zap.Ints("roots", found))

	if len(found) > 0 {
		if e := d.check(found); e != nil {
			return e, nil
		}
	}
	if t := d.p.T; t > 2 && len(found) > 0 && len(found) < t {
		if e := d.complete(found); e != nil {
			return e, nil
		}
	}
	if d.p.T <= 4 {
		d.patterns = 0
		if e := d.bruteForce(); e != nil {
			return e, nil
		}
	}
	d.log.Debug("decoding failed", zap.Int("patterns", d.patterns))
	return nil, fmt.Errorf("patterson: %w", isdgo.ErrNotFound)
}

// check returns the error vector on positions if it zeroes the syndrome of
// the received word within the weight bound.
func (d *pattersonDecoder) check(positions ...[]int) *bitutil.BitArray {
	e := bitutil.NewBitArray(d.p.N())
	for _, ps := range positions {
		for _, i := range ps {
			e.Set(i)
		}
	}
	if isdgo.Verify(e, d.h, d.target, d.w) {
		return e
	}
	return nil
}

// complete searches the t - len(found) positions the locator missed.
func (d *pattersonDecoder) complete(found []int) *bitutil.BitArray {
	rest := make([]int, 0, d.p.N()-len(found))
	for i := 0; i < d.p.N(); i++ {
		if !slices.Contains(found, i) {
			rest = append(rest, i)
		}
	}
	d.log.Debug("completing partial correction", zap.Int("missing", d.p.T-len(found)))
	return d.search(rest, d.p.T-len(found), found)
}

// bruteForce tries every single position, then every t-subset.
func (d *pattersonDecoder) bruteForce() *bitutil.BitArray {
	all := make([]int, d.p.N())
	for i := range all {
		all[i] = i
	}
	d.log.Debug("falling back to brute force")
	if e := d.search(all, 1, nil); e != nil {
		return e
	}
	if d.p.T >= 2 {
		return d.search(all, d.p.T, nil)
	}
	return nil
}

// search tries k-subsets of positions, each joined with fixed, until one
// verifies or the pattern budget is spent.
func (d *pattersonDecoder) search(positions []int, k int, fixed []int) *bitutil.BitArray {
	if k > len(positions) {
		return nil
	}
	pos := make([]int, k)
	for i := range pos {
		pos[i] = i
	}
	combo := make([]int, k)
	for d.patterns < d.opts.MaxPatterns {
		for i, p := range pos {
			combo[i] = positions[p]
		}
		d.patterns++
		if e := d.check(fixed, combo); e != nil {
			return e
		}
		i := k - 1
		for i >= 0 && pos[i] == len(positions)-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		pos[i]++
		for j := i + 1; j < k; j++ {
			pos[j] = pos[j-1] + 1
		}
	}
	return nil
}
