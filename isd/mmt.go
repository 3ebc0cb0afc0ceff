package isd

import (
	"fmt"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/bitutil"
)

// MMT splits the positions into p random partitions of size n/p (the last
// one takes the remainder) and groups them into a first half of p/2
// partitions and a second half of the rest. The weight is spread evenly over
// the partitions. Each half contributes L1 (resp. L2) random samples, each
// drawing its partitions' share of the weight from every partition in the
// half. Halves are matched through the complement syndrome.
//
// MMT is usually driven with a precomputed syndrome via isdgo.SyndromeOf.
func MMT(obs isdgo.Observation, h *bitutil.BitMatrix, w int, opts *isdgo.Options) (*bitutil.BitArray, error) {
	s, err := newSearch(isdgo.AlgorithmMMT, obs, h, w, opts)
	if err != nil {
		return nil, err
	}
	p := s.opts.Partitions
	if p < 2 || p > s.n {
		return nil, fmt.Errorf("%s: %w: partitions %d outside [2, %d]", s.alg, isdgo.ErrInvalidParams, p, s.n)
	}
	if e := s.trivial(); e != nil {
		return e, nil
	}

	sizes := make([]int, p)
	for i := range sizes {
		sizes[i] = s.n / p
	}
	sizes[p-1] += s.n % p
	weights := partitionWeights(w, sizes)
	expected := 0
	for _, wi := range weights {
		expected += wi
	}
	mid := p / 2

	for iter := 0; iter < s.opts.MaxIterations; iter++ {
		parts := split(s.opts.Rand, s.n, sizes...)
		first := s.sampleHalf(parts[:mid], weights[:mid], s.opts.L1)
		second := s.sampleHalf(parts[mid:], weights[mid:], s.opts.L2)
		for _, a := range first.all() {
			need := a.syndrome.Plus(s.target)
			for _, b := range second.lookup(need) {
				if len(a.indices)+len(b.indices) != expected {
					continue
				}
				if e := s.accept(iter, a.indices, b.indices); e != nil {
					return e, nil
				}
			}
		}
	}
	return nil, s.exhausted()
}

// partitionWeights spreads w evenly over the partitions, then hands the
// weight a full partition cannot hold to partitions with room left.
func partitionWeights(w int, sizes []int) []int {
	p := len(sizes)
	weights := make([]int, p)
	excess := 0
	for i := range weights {
		weights[i] = w / p
		if i < w%p {
			weights[i]++
		}
		if weights[i] > sizes[i] {
			excess += weights[i] - sizes[i]
			weights[i] = sizes[i]
		}
	}
	for i := 0; i < p && excess > 0; i++ {
		extra := min(excess, sizes[i]-weights[i])
		weights[i] += extra
		excess -= extra
	}
	return weights
}

// sampleHalf draws count combined samples, each the union of a random
// weights[i]-subset from every parts[i].
func (s *search) sampleHalf(parts [][]int, weights []int, count int) *candidateList {
	list := newCandidateList()
	seen := make(map[string]struct{}, count)
	for range count {
		var idx []int
		for i, part := range parts {
			idx = append(idx, sampleSubset(s.opts.Rand, part, weights[i])...)
		}
		key := subsetKey(idx)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		list.add(candidate{indices: idx, syndrome: s.partial(idx)})
	}
	return list
}
