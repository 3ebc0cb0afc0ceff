package isd

import (
	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
)

// Prange guesses one random weight-w support per iteration and accepts it
// when its syndrome equals the target exactly.
func Prange(obs isdgo.Observation, h *bitutil.BitMatrix, w int, opts *isdgo.Options) (*bitutil.BitArray, error) {
	s, err := newSearch(isdgo.AlgorithmPrange, obs, h, w, opts)
	if err != nil {
		return nil, err
	}
	if e := s.trivial(); e != nil {
		return e, nil
	}
	for iter := 0; iter < s.opts.MaxIterations; iter++ {
		support := s.opts.Rand.Perm(s.n)[:w]
		if !s.partial(support).Equals(s.target) {
			continue
		}
		if e := s.accept(iter, support); e != nil {
			return e, nil
		}
	}
	return nil, s.exhausted()
}
