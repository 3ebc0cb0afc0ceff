package main

import (
	"strings"
	"testing"

	"github.com/ericlevine/isdgo"
	"github.com/ericlevine/isdgo/attack"
	"github.com/ericlevine/isdgo/bitutil"
	"github.com/ericlevine/isdgo/codegen"
)

func TestFormatVector(t *testing.T) {
	if got := formatVector(bitutil.ParseBitArray("0110")); got != "0110" {
		t.Errorf("short vector = %q", got)
	}
	long := bitutil.NewBitArrayFromIndices(200, []int{3, 150})
	if got := formatVector(long); got != "weight 2 at {3, 150}" {
		t.Errorf("long vector = %q", got)
	}
}

func TestRenderReport(t *testing.T) {
	rep := &attack.Report{
		Config:   attack.Config{Algorithm: isdgo.AlgorithmMMT, Code: codegen.Random, N: 4, K: 2, W: 1},
		Injected: bitutil.ParseBitArray("0100"),
		Decoded:  bitutil.ParseBitArray("0100"),
		Outcome:  attack.Exact,
	}
	out := renderReport(rep, 9)
	for _, want := range []string{"mmt", "random (n=4, k=2, w=1)", "syndrome only", "exact injected error"} {
		if !strings.Contains(out, want) {
			t.Errorf("report lacks %q:\n%s", want, out)
		}
	}
	rep.Outcome = attack.Failed
	rep.Decoded = nil
	if out := renderReport(rep, 9); !strings.Contains(out, "no error vector found") {
		t.Errorf("failed report:\n%s", out)
	}
}

func TestTryRunUnknownKind(t *testing.T) {
	_, err := tryRun(attack.Config{Algorithm: isdgo.AlgorithmPrange, Code: codegen.Kind(7), N: 4, K: 2, W: 1}, nil)
	if err == nil {
		t.Errorf("tryRun accepted an unknown code kind")
	}
}
