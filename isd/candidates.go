package isd

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/ericlevine/isdgo/bitutil"
)

// candidate is an index subset together with its partial syndrome.
type candidate struct {
	indices  []int
	syndrome *bitutil.BitArray
}

// candidateList maps a partial syndrome to every subset producing it.
// Colliding subsets are appended, never overwritten. Insertion order is kept
// so that seeded runs visit candidates in a reproducible order.
type candidateList struct {
	items []candidate
	byKey map[string][]int
}

func newCandidateList() *candidateList {
	return &candidateList{byKey: make(map[string][]int)}
}

func (l *candidateList) add(c candidate) {
	k := c.syndrome.Key()
	l.byKey[k] = append(l.byKey[k], len(l.items))
	l.items = append(l.items, c)
}

// lookup returns every candidate whose partial syndrome equals s.
func (l *candidateList) lookup(s *bitutil.BitArray) []candidate {
	pos := l.byKey[s.Key()]
	if len(pos) == 0 {
		return nil
	}
	out := make([]candidate, len(pos))
	for i, p := range pos {
		out[i] = l.items[p]
	}
	return out
}

func (l *candidateList) size() int {
	return len(l.items)
}

// all returns every candidate in insertion order.
func (l *candidateList) all() []candidate {
	return l.items
}

// enumerate returns a list with every k-subset of part. k is clipped to
// len(part).
func (s *search) enumerate(part []int, k int) *candidateList {
	list := newCandidateList()
	forEachCombination(part, min(k, len(part)), func(c []int) bool {
		idx := slices.Clone(c)
		list.add(candidate{indices: idx, syndrome: s.partial(idx)})
		return true
	})
	return list
}

// sample returns a list of up to count random k-subsets of part. Repeated
// draws of the same subset are kept once. k is clipped to len(part).
func (s *search) sample(part []int, k, count int) *candidateList {
	list := newCandidateList()
	seen := make(map[string]struct{}, count)
	for range count {
		idx := sampleSubset(s.opts.Rand, part, k)
		key := subsetKey(idx)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		list.add(candidate{indices: idx, syndrome: s.partial(idx)})
	}
	return list
}

// forEachCombination calls fn with every k-subset of items in lexicographic
// order of positions. The slice passed to fn is reused between calls.
// Enumeration stops early when fn returns false.
func forEachCombination(items []int, k int, fn func([]int) bool) {
	n := len(items)
	if k < 0 || k > n {
		return
	}
	pos := make([]int, k)
	for i := range pos {
		pos[i] = i
	}
	combo := make([]int, k)
	for {
		for i, p := range pos {
			combo[i] = items[p]
		}
		if !fn(combo) {
			return
		}
		i := k - 1
		for i >= 0 && pos[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		pos[i]++
		for j := i + 1; j < k; j++ {
			pos[j] = pos[j-1] + 1
		}
	}
}

// sampleSubset returns k distinct random elements of part in ascending
// order. k is clipped to len(part).
func sampleSubset(rng *rand.Rand, part []int, k int) []int {
	k = min(max(k, 0), len(part))
	pool := slices.Clone(part)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := pool[:k]
	slices.Sort(out)
	return out
}

// split divides the shuffled positions 0..n-1 into parts of the given sizes.
func split(rng *rand.Rand, n int, sizes ...int) [][]int {
	perm := rng.Perm(n)
	parts := make([][]int, len(sizes))
	off := 0
	for i, sz := range sizes {
		parts[i] = perm[off : off+sz]
		off += sz
	}
	return parts
}

func subsetKey(idx []int) string {
	var sb strings.Builder
	for _, i := range idx {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(',')
	}
	return sb.String()
}
