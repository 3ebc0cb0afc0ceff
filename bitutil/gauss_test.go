package bitutil

import (
	"reflect"
	"testing"
)

func TestRowReduce(t *testing.T) {
	bm := ParseBitMatrix(
		"0110",
		"1100",
		"1010",
	)
	pivots := bm.RowReduce()
	if want := []int{0, 1}; !reflect.DeepEqual(pivots, want) {
		t.Fatalf("pivots = %v, want %v", pivots, want)
	}
	want := ParseBitMatrix(
		"1010",
		"0110",
		"0000",
	)
	if !bm.Equals(want) {
		t.Errorf("reduced =\n%s want\n%s", bm, want)
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		rows []string
		want int
	}{
		{[]string{"000", "000"}, 0},
		{[]string{"100", "010", "001"}, 3},
		{[]string{"110", "011", "101"}, 2},
	}
	for _, tt := range tests {
		bm := ParseBitMatrix(tt.rows...)
		if got := bm.Rank(); got != tt.want {
			t.Errorf("Rank(%v) = %d, want %d", tt.rows, got, tt.want)
		}
		if !bm.Equals(ParseBitMatrix(tt.rows...)) {
			t.Error("Rank modified its receiver")
		}
	}
}

func TestNullSpace(t *testing.T) {
	h := ParseBitMatrix(
		"1010101",
		"0110011",
		"0001111",
	)
	g := NullSpace(h)
	if g == nil {
		t.Fatal("NullSpace returned nil")
	}
	if g.Height() != 4 || g.Width() != 7 {
		t.Fatalf("NullSpace is %dx%d, want 4x7", g.Height(), g.Width())
	}
	if !g.MulTranspose(h).IsZero() {
		t.Error("basis vectors are not in the kernel")
	}
	if g.Rank() != 4 {
		t.Errorf("basis rank = %d, want 4", g.Rank())
	}
	if NullSpace(NewIdentity(5)) != nil {
		t.Error("identity should have a trivial kernel")
	}
}
