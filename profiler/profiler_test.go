package profiler

import (
	"testing"
	"time"
)

var sink [][]byte

func TestTimer(t *testing.T) {
	timer := Start()
	time.Sleep(2 * time.Millisecond)
	if got := timer.Elapsed(); got < 2*time.Millisecond {
		t.Errorf("Elapsed() = %v, want >= 2ms", got)
	}
}

func TestMeasure(t *testing.T) {
	m := Measure(func() {
		for i := 0; i < 64; i++ {
			sink = append(sink, make([]byte, 1<<16))
		}
		time.Sleep(3 * time.Millisecond)
	})
	defer func() { sink = nil }()
	if m.AllocBytes < 64<<16 {
		t.Errorf("AllocBytes = %d, want >= %d", m.AllocBytes, 64<<16)
	}
	if m.PeakBytes == 0 {
		t.Errorf("PeakBytes = 0, want the retained slices")
	}
	if m.Elapsed < 3*time.Millisecond {
		t.Errorf("Elapsed = %v, want >= 3ms", m.Elapsed)
	}
}

func TestSamplerObserve(t *testing.T) {
	s := &sampler{base: 100}
	for _, heap := range []uint64{50, 180, 120, 160} {
		s.observe(heap)
	}
	if s.peak != 80 {
		t.Errorf("peak = %d, want 80", s.peak)
	}
}
