package isd

import (
	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
)

// Stern splits the positions into two random halves, enumerates every
// w/2-subset of the left half and every (w - w/2)-subset of the right half,
// and matches them through the complement syndrome target ⊕ leftSyndrome.
func Stern(obs isdgo.Observation, h *bitutil.BitMatrix, w int, opts *isdgo.Options) (*bitutil.BitArray, error) {
	s, err := newSearch(isdgo.AlgorithmStern, obs, h, w, opts)
	if err != nil {
		return nil, err
	}
	return s.meetInTheMiddle()
}

// LeeBrickell runs the same exhaustive two-halves enumeration as Stern. It
// is meant for even weights and warns when w is odd, in which case the
// right half carries the extra position.
func LeeBrickell(obs isdgo.Observation, h *bitutil.BitMatrix, w int, opts *isdgo.Options) (*bitutil.BitArray, error) {
	s, err := newSearch(isdgo.AlgorithmLeeBrickell, obs, h, w, opts)
	if err != nil {
		return nil, err
	}
	if w%2 != 0 {
		s.log.Warn("odd weight, halves will be unbalanced")
	}
	return s.meetInTheMiddle()
}

func (s *search) meetInTheMiddle() (*bitutil.BitArray, error) {
	if e := s.trivial(); e != nil {
		return e, nil
	}
	half := s.n/2 + s.n%2
	p1 := s.w / 2
	p2 := s.w - p1
	for iter := 0; iter < s.opts.MaxIterations; iter++ {
		parts := split(s.opts.Rand, s.n, half, s.n-half)
		right := s.enumerate(parts[1], p2)
		var found *bitutil.BitArray
		forEachCombination(parts[0], min(p1, len(parts[0])), func(left []int) bool {
			need := s.partial(left)
			need.Xor(s.target)
			for _, c := range right.lookup(need) {
				if e := s.accept(iter, left, c.indices); e != nil {
					found = e
					return false
				}
			}
			return true
		})
		if found != nil {
			return found, nil
		}
	}
	return nil, s.exhausted()
}
