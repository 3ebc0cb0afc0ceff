// Package bitutil provides packed bit vectors and matrices over GF(2).
package bitutil

import (
	"math/bits"
	"strings"
)

// BitArray is a fixed-size vector over GF(2) stored compactly in uint32 words.
// It is used for error vectors, codewords and syndromes.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a new all-zero BitArray with the given size.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: makeArray(size),
		size: size,
	}
}

// NewBitArrayFromIndices creates a BitArray of the given size with the listed
// positions set. Repeated indices cancel, as in GF(2) addition.
func NewBitArrayFromIndices(size int, indices []int) *BitArray {
	ba := NewBitArray(size)
	for _, i := range indices {
		ba.Flip(i)
	}
	return ba
}

// ParseBitArray parses a string of '0' and '1' characters. Any other
// character is skipped, so "1011 0010" is accepted.
func ParseBitArray(s string) *BitArray {
	n := strings.Count(s, "0") + strings.Count(s, "1")
	ba := NewBitArray(n)
	i := 0
	for _, c := range s {
		switch c {
		case '1':
			ba.Set(i)
			i++
		case '0':
			i++
		}
	}
	return ba
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.bits[i/32] |= 1 << uint(i&0x1F)
}

// Unset clears bit i.
func (ba *BitArray) Unset(i int) {
	ba.bits[i/32] &^= 1 << uint(i&0x1F)
}

// Flip flips bit i.
func (ba *BitArray) Flip(i int) {
	ba.bits[i/32] ^= 1 << uint(i&0x1F)
}

// GetNextSet returns the index of the first set bit starting from the given
// index, or size if none are set.
func (ba *BitArray) GetNextSet(from int) int {
	if from >= ba.size {
		return ba.size
	}
	bitsOffset := from / 32
	currentBits := ba.bits[bitsOffset]
	// mask off lesser bits
	currentBits &= ^uint32(0) << uint(from&0x1F)
	for currentBits == 0 {
		bitsOffset++
		if bitsOffset == len(ba.bits) {
			return ba.size
		}
		currentBits = ba.bits[bitsOffset]
	}
	result := bitsOffset*32 + bits.TrailingZeros32(currentBits)
	if result > ba.size {
		return ba.size
	}
	return result
}

// SetBulk sets a block of 32 bits starting at bit i.
func (ba *BitArray) SetBulk(i int, newBits uint32) {
	ba.bits[i/32] = newBits
}

// Clear clears all bits.
func (ba *BitArray) Clear() {
	for i := range ba.bits {
		ba.bits[i] = 0
	}
}

// Xor adds other into ba in place.
func (ba *BitArray) Xor(other *BitArray) {
	if ba.size != other.size {
		panic("bitarray: sizes don't match")
	}
	for i := range ba.bits {
		ba.bits[i] ^= other.bits[i]
	}
}

// Plus returns ba ⊕ other as a new BitArray.
func (ba *BitArray) Plus(other *BitArray) *BitArray {
	sum := ba.Clone()
	sum.Xor(other)
	return sum
}

// Dot returns the GF(2) inner product of ba and other.
func (ba *BitArray) Dot(other *BitArray) bool {
	if ba.size != other.size {
		panic("bitarray: sizes don't match")
	}
	parity := 0
	for i, w := range ba.bits {
		parity ^= bits.OnesCount32(w & other.bits[i])
	}
	return parity&1 == 1
}

// Weight returns the Hamming weight (number of set bits).
func (ba *BitArray) Weight() int {
	n := 0
	for _, w := range ba.bits {
		n += bits.OnesCount32(w)
	}
	return n
}

// IsZero returns true if no bit is set.
func (ba *BitArray) IsZero() bool {
	for _, w := range ba.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// Indices returns the positions of all set bits in ascending order.
func (ba *BitArray) Indices() []int {
	out := make([]int, 0, ba.Weight())
	for i := ba.GetNextSet(0); i < ba.size; i = ba.GetNextSet(i + 1) {
		out = append(out, i)
	}
	return out
}

// Key returns the packed little-endian bytes of the array as a string,
// suitable as a map key. Arrays of equal size and content share a key.
func (ba *BitArray) Key() string {
	buf := make([]byte, (ba.size+7)/8)
	for i := range buf {
		buf[i] = byte(ba.bits[i/4] >> (8 * uint(i%4)))
	}
	return string(buf)
}

// BitData returns the underlying uint32 slice.
func (ba *BitArray) BitData() []uint32 {
	return ba.bits
}

// Clone returns a copy of this BitArray.
func (ba *BitArray) Clone() *BitArray {
	b := make([]uint32, len(ba.bits))
	copy(b, ba.bits)
	return &BitArray{bits: b, size: ba.size}
}

// Equals returns true if both arrays have the same size and bits. Two nil
// arrays are equal.
func (ba *BitArray) Equals(other *BitArray) bool {
	if ba == nil || other == nil {
		return ba == other
	}
	if ba.size != other.size {
		return false
	}
	for i := range ba.bits {
		if ba.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// String returns the bits as a string of '0' and '1', lowest index first.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size)
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
