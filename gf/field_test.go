package gf

import (
	"errors"
	"testing"
)

func TestNewFieldDegree(t *testing.T) {
	for _, m := range []int{0, 1, 17} {
		if _, err := NewField(m); !errors.Is(err, ErrFieldDegree) {
			t.Errorf("NewField(%d) err = %v, want ErrFieldDegree", m, err)
		}
	}
	f, err := NewField(3)
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != 8 || f.Degree() != 3 || f.ReductionPoly() != 0xB {
		t.Errorf("GF(8) = %s, size %d", f, f.Size())
	}
}

func TestMultiplyGF8(t *testing.T) {
	f := MustField(3)
	tests := []struct {
		a, b, want Element
	}{
		{3, 5, 4},
		{0, 7, 0},
		{1, 6, 6},
		{2, 4, 3}, // x * x^2 = x^3 = x + 1
		{7, 7, 3},
		{6, 7, 4},
	}
	for _, tt := range tests {
		if got := f.Multiply(tt.a, tt.b); got != tt.want {
			t.Errorf("Multiply(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := f.Multiply(tt.b, tt.a); got != tt.want {
			t.Errorf("Multiply(%d, %d) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestInverseAllFields(t *testing.T) {
	for m := 2; m <= 16; m++ {
		f := MustField(m)
		for a := 1; a < f.Size(); a++ {
			inv := f.Inverse(Element(a))
			if int(inv) >= f.Size() {
				t.Fatalf("GF(2^%d): Inverse(%d) = %d out of range", m, a, inv)
			}
			if p := f.Multiply(Element(a), inv); p != 1 {
				t.Fatalf("GF(2^%d): %d * Inverse(%d) = %d, want 1", m, a, a, p)
			}
		}
	}
}

func TestInverseZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Inverse(0) should panic")
		}
	}()
	MustField(4).Inverse(0)
}

func TestReductionPolysArePrimitive(t *testing.T) {
	for m := 2; m <= 16; m++ {
		f := MustField(m)
		// x = 2 generates the multiplicative group iff its order is 2^m - 1.
		x := Element(1)
		order := 0
		for {
			x = f.Multiply(x, 2)
			order++
			if x == 1 {
				break
			}
			if order > f.Size() {
				t.Fatalf("GF(2^%d): no cycle found", m)
			}
		}
		if order != f.Size()-1 {
			t.Errorf("GF(2^%d): order of x = %d, want %d", m, order, f.Size()-1)
		}
	}
}

func TestSqrtAndPow(t *testing.T) {
	f := MustField(8)
	for a := 0; a < f.Size(); a++ {
		e := Element(a)
		if got := f.Square(f.Sqrt(e)); got != e {
			t.Fatalf("Sqrt(%d)^2 = %d", a, got)
		}
		if got := f.Pow(e, 3); got != f.Multiply(e, f.Square(e)) {
			t.Fatalf("Pow(%d, 3) = %d", a, got)
		}
	}
	if f.Pow(0, 0) != 1 {
		t.Error("0^0 should be 1")
	}
}

func TestEvaluate(t *testing.T) {
	f := MustField(3)
	p := Poly{5, 3, 1} // 5 + 3z + z^2
	if got := f.Evaluate(p, 0); got != 5 {
		t.Errorf("Evaluate(p, 0) = %d, want 5", got)
	}
	if got := f.Evaluate(p, 1); got != 5^3^1 {
		t.Errorf("Evaluate(p, 1) = %d, want %d", got, 5^3^1)
	}
	// z = 2: 5 + 3*2 + 2*2 = 5 ^ 6 ^ 4 = 7
	if got := f.Evaluate(p, 2); got != 7 {
		t.Errorf("Evaluate(p, 2) = %d, want 7", got)
	}
	if got := f.Evaluate(nil, 3); got != 0 {
		t.Errorf("Evaluate(nil, 3) = %d, want 0", got)
	}
}
