package isd

import (
	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
)

// BallCollision draws ListSize random w/2-subsets from each of two random
// halves instead of enumerating them, and matches left and right through the
// complement syndrome. Sampling makes a single iteration cheaper than Stern
// but also less likely to succeed.
func BallCollision(obs isdgo.Observation, h *bitutil.BitMatrix, w int, opts *isdgo.Options) (*bitutil.BitArray, error) {
	s, err := newSearch(isdgo.AlgorithmBallCollision, obs, h, w, opts)
	if err != nil {
		return nil, err
	}
	if e := s.trivial(); e != nil {
		return e, nil
	}
	p1 := w / 2
	p2 := w - p1
	for iter := 0; iter < s.opts.MaxIterations; iter++ {
		parts := split(s.opts.Rand, s.n, s.n/2, s.n-s.n/2)
		left := s.sample(parts[0], p1, s.opts.ListSize)
		right := s.sample(parts[1], p2, s.opts.ListSize)
		for _, l := range left.all() {
			need := l.syndrome.Plus(s.target)
			for _, r := range right.lookup(need) {
				if e := s.accept(iter, l.indices, r.indices); e != nil {
					return e, nil
				}
			}
		}
	}
	return nil, s.exhausted()
}
