package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixFlip(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	bm.Flip(1, 2)
	if !bm.Get(1, 2) {
		t.Error("bit should be set after flip")
	}
	bm.Flip(1, 2)
	if bm.Get(1, 2) {
		t.Error("bit should be unset after double flip")
	}
}

func TestBitMatrixRow(t *testing.T) {
	bm := NewBitMatrixWithSize(40, 4)
	bm.Set(3, 2)
	bm.Set(35, 2)
	row := bm.Row(2, nil)
	if !row.Get(3) || !row.Get(35) {
		t.Error("row should have bits 3 and 35 set")
	}
	if row.Get(4) {
		t.Error("row bit 4 should not be set")
	}
	bm.SetRow(0, row)
	if !bm.Get(35, 0) {
		t.Error("SetRow did not copy bit 35")
	}
}

func TestBitMatrixColumns(t *testing.T) {
	bm := ParseBitMatrix(
		"1010",
		"0110",
		"1111",
	)
	cols := bm.Columns()
	want := []string{"101", "011", "111", "001"}
	for x, c := range cols {
		if c.String() != want[x] {
			t.Errorf("column %d = %s, want %s", x, c, want[x])
		}
		if !c.Equals(bm.Column(x)) {
			t.Errorf("Columns()[%d] != Column(%d)", x, x)
		}
	}
}

func TestBitMatrixMulVector(t *testing.T) {
	// Hamming(7,4) parity-check matrix, column i is the binary form of i+1.
	h := ParseBitMatrix(
		"1010101",
		"0110011",
		"0001111",
	)
	for pos := 0; pos < 7; pos++ {
		e := NewBitArrayFromIndices(7, []int{pos})
		s := h.MulVector(e)
		if !s.Equals(h.Column(pos)) {
			t.Errorf("H·e_%d = %s, want column %s", pos, s, h.Column(pos))
		}
	}
	if !h.MulVector(NewBitArray(7)).IsZero() {
		t.Error("H·0 should be zero")
	}
}

func TestBitMatrixMulTranspose(t *testing.T) {
	g := ParseBitMatrix(
		"1110000",
		"1001100",
		"0101010",
		"1101001",
	)
	h := ParseBitMatrix(
		"1010101",
		"0110011",
		"0001111",
	)
	if p := g.MulTranspose(h); !p.IsZero() {
		t.Errorf("G·Hᵗ should be zero, got\n%s", p)
	}
	p := h.MulTranspose(h)
	if p.Width() != 3 || p.Height() != 3 {
		t.Errorf("H·Hᵗ is %dx%d, want 3x3", p.Height(), p.Width())
	}
}

func TestBitMatrixTranspose(t *testing.T) {
	bm := ParseBitMatrix(
		"110",
		"001",
	)
	tr := bm.Transpose()
	want := ParseBitMatrix(
		"10",
		"10",
		"01",
	)
	if !tr.Equals(want) {
		t.Errorf("Transpose =\n%s want\n%s", tr, want)
	}
	if !tr.Transpose().Equals(bm) {
		t.Error("double transpose should be identity")
	}
}

func TestBitMatrixRowOps(t *testing.T) {
	bm := ParseBitMatrix(
		"1100",
		"0110",
	)
	bm.XorRow(0, 1)
	bm.SwapRows(0, 1)
	want := ParseBitMatrix(
		"0110",
		"1010",
	)
	if !bm.Equals(want) {
		t.Errorf("got\n%s want\n%s", bm, want)
	}
	if got := bm.RowSlice(1, 2).String(); got != "1010\n" {
		t.Errorf("RowSlice = %q", got)
	}
}

func TestBitMatrixClone(t *testing.T) {
	bm := NewBitMatrixWithSize(5, 5)
	bm.Set(2, 3)
	clone := bm.Clone()
	if !bm.Equals(clone) {
		t.Error("clone should be equal")
	}
	clone.Set(0, 0)
	if bm.Get(0, 0) {
		t.Error("modifying clone should not affect original")
	}
}

func TestBitMatrixInvalidDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero dimensions")
		}
	}()
	NewBitMatrixWithSize(0, 3)
}
