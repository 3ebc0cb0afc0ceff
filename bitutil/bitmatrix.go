package bitutil

import (
	"math/bits"
	"strings"
)

// BitMatrix represents a dense matrix over GF(2).
// x is the column position, y is the row position. Parity-check matrices are
// r×n (height r, width n) and generator matrices k×n.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrixWithSize creates a new all-zero BitMatrix with the given width
// (columns) and height (rows).
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// NewIdentity returns the size×size identity matrix.
func NewIdentity(size int) *BitMatrix {
	bm := NewBitMatrixWithSize(size, size)
	for i := 0; i < size; i++ {
		bm.Set(i, i)
	}
	return bm
}

// NewBitMatrixFromRows stacks equally sized rows into a matrix.
func NewBitMatrixFromRows(rows []*BitArray) *BitMatrix {
	if len(rows) == 0 {
		panic("bitmatrix: no rows")
	}
	bm := NewBitMatrixWithSize(rows[0].Size(), len(rows))
	for y, row := range rows {
		if row.Size() != bm.width {
			panic("bitmatrix: row lengths do not match")
		}
		bm.SetRow(y, row)
	}
	return bm
}

// ParseBitMatrix builds a matrix from rows written as '0'/'1' strings.
func ParseBitMatrix(rows ...string) *BitMatrix {
	arrays := make([]*BitArray, len(rows))
	for i, r := range rows {
		arrays[i] = ParseBitArray(r)
	}
	return NewBitMatrixFromRows(arrays)
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset clears the bit at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// Flip flips the bit at (x, y).
func (bm *BitMatrix) Flip(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] ^= 1 << uint(x&0x1f)
}

// Row returns a row as a BitArray. If row is nil or too small, a new one is allocated.
func (bm *BitMatrix) Row(y int, row *BitArray) *BitArray {
	if row == nil || row.Size() < bm.width {
		row = NewBitArray(bm.width)
	} else {
		row.Clear()
	}
	offset := y * bm.rowSize
	for x := 0; x < bm.rowSize; x++ {
		row.SetBulk(x*32, bm.data[offset+x])
	}
	return row
}

// SetRow sets the row at y from the given BitArray.
func (bm *BitMatrix) SetRow(y int, row *BitArray) {
	copy(bm.data[y*bm.rowSize:(y+1)*bm.rowSize], row.BitData()[:bm.rowSize])
}

// Column returns column x as a BitArray of length Height().
func (bm *BitMatrix) Column(x int) *BitArray {
	col := NewBitArray(bm.height)
	for y := 0; y < bm.height; y++ {
		if bm.Get(x, y) {
			col.Set(y)
		}
	}
	return col
}

// Columns returns every column of the matrix. Search loops use it to XOR
// columns without walking the rows again.
func (bm *BitMatrix) Columns() []*BitArray {
	cols := make([]*BitArray, bm.width)
	for x := range cols {
		cols[x] = NewBitArray(bm.height)
	}
	for y := 0; y < bm.height; y++ {
		row := bm.data[y*bm.rowSize : (y+1)*bm.rowSize]
		for w, word := range row {
			for word != 0 {
				x := w*32 + bits.TrailingZeros32(word)
				cols[x].Set(y)
				word &= word - 1
			}
		}
	}
	return cols
}

// MulVector returns bm·v over GF(2): bit y is the parity of row y AND v.
func (bm *BitMatrix) MulVector(v *BitArray) *BitArray {
	if v.Size() != bm.width {
		panic("bitmatrix: vector length does not match width")
	}
	vb := v.BitData()
	out := NewBitArray(bm.height)
	for y := 0; y < bm.height; y++ {
		parity := 0
		row := bm.data[y*bm.rowSize : (y+1)*bm.rowSize]
		for i, w := range row {
			parity ^= bits.OnesCount32(w & vb[i])
		}
		if parity&1 == 1 {
			out.Set(y)
		}
	}
	return out
}

// MulTranspose returns bm·otherᵗ, a Height()×other.Height() matrix. Both
// operands must have the same width.
func (bm *BitMatrix) MulTranspose(other *BitMatrix) *BitMatrix {
	if bm.width != other.width {
		panic("bitmatrix: dimensions do not match")
	}
	out := NewBitMatrixWithSize(other.height, bm.height)
	for y := 0; y < bm.height; y++ {
		a := bm.data[y*bm.rowSize : (y+1)*bm.rowSize]
		for x := 0; x < other.height; x++ {
			b := other.data[x*other.rowSize : (x+1)*other.rowSize]
			parity := 0
			for i := range a {
				parity ^= bits.OnesCount32(a[i] & b[i])
			}
			if parity&1 == 1 {
				out.Set(x, y)
			}
		}
	}
	return out
}

// Transpose returns a new matrix with rows and columns exchanged.
func (bm *BitMatrix) Transpose() *BitMatrix {
	out := NewBitMatrixWithSize(bm.height, bm.width)
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				out.Set(y, x)
			}
		}
	}
	return out
}

// XorRow adds row src into row dst.
func (bm *BitMatrix) XorRow(dst, src int) {
	d := bm.data[dst*bm.rowSize : (dst+1)*bm.rowSize]
	s := bm.data[src*bm.rowSize : (src+1)*bm.rowSize]
	for i := range d {
		d[i] ^= s[i]
	}
}

// SwapRows exchanges rows a and b.
func (bm *BitMatrix) SwapRows(a, b int) {
	if a == b {
		return
	}
	ra := bm.data[a*bm.rowSize : (a+1)*bm.rowSize]
	rb := bm.data[b*bm.rowSize : (b+1)*bm.rowSize]
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}

// RowSlice returns a copy of rows [from, to).
func (bm *BitMatrix) RowSlice(from, to int) *BitMatrix {
	if from < 0 || to > bm.height || to <= from {
		panic("bitmatrix: invalid row range")
	}
	d := make([]uint32, (to-from)*bm.rowSize)
	copy(d, bm.data[from*bm.rowSize:to*bm.rowSize])
	return &BitMatrix{width: bm.width, height: to - from, rowSize: bm.rowSize, data: d}
}

// IsZero returns true if no bit is set.
func (bm *BitMatrix) IsZero() bool {
	for _, w := range bm.data {
		if w != 0 {
			return false
		}
	}
	return true
}

// Width returns the number of columns.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *BitMatrix) Height() int { return bm.height }

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// String returns one line per row using '1' and '0'.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("1", "0")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals returns true if two BitMatrices are equal.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height || bm.rowSize != other.rowSize {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
