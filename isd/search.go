// Package isd implements the information-set decoding family over GF(2):
// Prange, Stern, Lee-Brickell, Ball-Collision, BJMM and MMT.
//
// Every decoder has the same shape. It takes an observation (received word
// or syndrome), a parity-check matrix H, a target weight w and options, and
// returns an error vector e with weight(e) <= w and H·e equal to the target
// syndrome, or isdgo.ErrNotFound once its iteration budget is spent. The
// full syndrome of a candidate is always recomputed before it is returned,
// so a partial-syndrome collision can never leak out as a wrong answer.
// Decoders never modify H and keep no state between calls.
package isd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
)

// search holds the per-invocation state shared by the decoders.
type search struct {
	alg    isdgo.Algorithm
	h      *bitutil.BitMatrix
	cols   []*bitutil.BitArray
	target *bitutil.BitArray
	n, r   int
	w      int
	opts   isdgo.Options
	log    *zap.Logger
}

func newSearch(alg isdgo.Algorithm, obs isdgo.Observation, h *bitutil.BitMatrix, w int, opts *isdgo.Options) (*search, error) {
	if h == nil {
		return nil, fmt.Errorf("%s: %w: nil parity-check matrix", alg, isdgo.ErrInvalidParams)
	}
	if err := isdgo.CheckWeight(w, h.Width()); err != nil {
		return nil, fmt.Errorf("%s: %w", alg, err)
	}
	target, err := obs.Target(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", alg, err)
	}
	s := &search{
		alg:    alg,
		h:      h,
		target: target,
		n:      h.Width(),
		r:      h.Height(),
		w:      w,
		opts:   opts.WithDefaults(),
		log:    Logger().With(zap.Stringer("alg", alg)),
	}
	return s, nil
}

// trivial returns the zero vector when the target syndrome is zero.
func (s *search) trivial() *bitutil.BitArray {
	if s.target.IsZero() {
		s.log.Debug("zero syndrome, nothing to decode")
		return bitutil.NewBitArray(s.n)
	}
	return nil
}

// columns caches the columns of H on first use.
func (s *search) columns() []*bitutil.BitArray {
	if s.cols == nil {
		s.cols = s.h.Columns()
	}
	return s.cols
}

func (s *search) partial(indices []int) *bitutil.BitArray {
	return isdgo.PartialSyndromeColumns(s.columns(), indices, s.r)
}

// accept builds the error vector supported on the union of parts and
// returns it if its full syndrome matches the target, or nil otherwise.
func (s *search) accept(iter int, parts ...[]int) *bitutil.BitArray {
	e := bitutil.NewBitArray(s.n)
	for _, p := range parts {
		for _, i := range p {
			e.Set(i)
		}
	}
	if !isdgo.Verify(e, s.h, s.target, s.w) {
		return nil
	}
	s.log.Debug("error vector found", zap.Int("iteration", iter), zap.Int("weight", e.Weight()))
	return e
}

func (s *search) exhausted() error {
	s.log.Debug("search exhausted", zap.Int("iterations", s.opts.MaxIterations))
	return fmt.Errorf("%s: %w after %d iterations", s.alg, isdgo.ErrNotFound, s.opts.MaxIterations)
}
