package bitutil

// RowReduce brings bm to reduced row echelon form in place and returns the
// pivot column of each of the first len(pivots) rows. Rows past the rank are
// zero after the call.
func (bm *BitMatrix) RowReduce() []int {
	var pivots []int
	row := 0
	for col := 0; col < bm.width && row < bm.height; col++ {
		sel := -1
		for y := row; y < bm.height; y++ {
			if bm.Get(col, y) {
				sel = y
				break
			}
		}
		if sel < 0 {
			continue
		}
		bm.SwapRows(row, sel)
		for y := 0; y < bm.height; y++ {
			if y != row && bm.Get(col, y) {
				bm.XorRow(y, row)
			}
		}
		pivots = append(pivots, col)
		row++
	}
	return pivots
}

// Rank returns the GF(2) rank of bm without modifying it.
func (bm *BitMatrix) Rank() int {
	return len(bm.Clone().RowReduce())
}

// NullSpace returns a basis of {x : bm·x = 0} as the rows of a matrix, or nil
// if the kernel is trivial. Each basis vector has a single set bit among the
// non-pivot columns, so the result is systematic on those columns.
func NullSpace(bm *BitMatrix) *BitMatrix {
	r := bm.Clone()
	pivots := r.RowReduce()
	isPivot := make([]bool, bm.width)
	for _, p := range pivots {
		isPivot[p] = true
	}
	var basis []*BitArray
	for f := 0; f < bm.width; f++ {
		if isPivot[f] {
			continue
		}
		v := NewBitArray(bm.width)
		v.Set(f)
		for i, p := range pivots {
			if r.Get(f, i) {
				v.Set(p)
			}
		}
		basis = append(basis, v)
	}
	if len(basis) == 0 {
		return nil
	}
	return NewBitMatrixFromRows(basis)
}
