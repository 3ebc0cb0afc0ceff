package isd

import (
	"go.uber.org/zap"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
)

// BJMM splits the positions into four random quarters and samples ListSize
// subsets per quarter with weights w/4, w/4, w/4 and the remainder. The C and
// D lists are merged into one list keyed by rep_C ⊕ rep_D, then every pair
// from A and B looks up target ⊕ rep_A ⊕ rep_B in it. The union of the four
// subsets is verified against the full syndrome.
func BJMM(obs isdgo.Observation, h *bitutil.BitMatrix, w int, opts *isdgo.Options) (*bitutil.BitArray, error) {
	s, err := newSearch(isdgo.AlgorithmBJMM, obs, h, w, opts)
	if err != nil {
		return nil, err
	}
	if e := s.trivial(); e != nil {
		return e, nil
	}
	q := s.n / 4
	sizes := []int{q, q, q, s.n - 3*q}
	weights := []int{w / 4, w / 4, w / 4, w - 3*(w/4)}
	for iter := 0; iter < s.opts.MaxIterations; iter++ {
		parts := split(s.opts.Rand, s.n, sizes...)
		lists := make([]*candidateList, 4)
		for i := range lists {
			lists[i] = s.sample(parts[i], weights[i], s.opts.ListSize)
		}
		cd := merge(lists[2], lists[3])
		s.log.Debug("lists built",
			zap.Int("iteration", iter),
			zap.Int("a", lists[0].size()),
			zap.Int("b", lists[1].size()),
			zap.Int("cd", cd.size()))
		bs := lists[1].all()
		for _, a := range lists[0].all() {
			needA := a.syndrome.Plus(s.target)
			for _, b := range bs {
				need := needA.Plus(b.syndrome)
				for _, c := range cd.lookup(need) {
					if e := s.accept(iter, a.indices, b.indices, c.indices); e != nil {
						return e, nil
					}
				}
			}
		}
	}
	return nil, s.exhausted()
}

// merge returns the list of all pairwise unions of x and y, keyed by the XOR
// of their partial syndromes.
func merge(x, y *candidateList) *candidateList {
	out := newCandidateList()
	ys := y.all()
	for _, a := range x.all() {
		for _, b := range ys {
			idx := make([]int, 0, len(a.indices)+len(b.indices))
			idx = append(idx, a.indices...)
			idx = append(idx, b.indices...)
			out.add(candidate{indices: idx, syndrome: a.syndrome.Plus(b.syndrome)})
		}
	}
	return out
}
