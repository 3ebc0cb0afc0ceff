// Package profiler measures the wall time and heap growth of a decoder run.
package profiler

import (
	"runtime"
	"sync"
	"time"
)

// Timer is a lightweight timing helper for instrumentation.
type Timer struct {
	start time.Time
}

// Start returns a Timer running from now.
func Start() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the time since Start.
func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Metrics is what Measure observed.
type Metrics struct {
	Elapsed time.Duration

	// PeakBytes is the largest heap growth over the starting heap seen by
	// the sampler. It is an estimate: short-lived peaks between samples and
	// garbage collections are missed.
	PeakBytes uint64

	// AllocBytes is the total number of bytes allocated during the run,
	// including memory already freed.
	AllocBytes uint64
}

// SampleInterval is how often Measure polls the heap.
var SampleInterval = time.Millisecond

// Measure runs fn while sampling the heap in the background. The process-wide
// allocator is shared, so concurrent work inflates the figures.
func Measure(fn func()) Metrics {
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	base := before.HeapAlloc

	s := &sampler{base: base, done: make(chan struct{})}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.run()
	}()

	timer := Start()
	fn()
	elapsed := timer.Elapsed()

	close(s.done)
	wg.Wait()

	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	s.observe(after.HeapAlloc)
	return Metrics{
		Elapsed:    elapsed,
		PeakBytes:  s.peak,
		AllocBytes: after.TotalAlloc - before.TotalAlloc,
	}
}

type sampler struct {
	base uint64
	peak uint64
	done chan struct{}
}

func (s *sampler) run() {
	ticker := time.NewTicker(SampleInterval)
	defer ticker.Stop()
	var ms runtime.MemStats
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			runtime.ReadMemStats(&ms)
			s.observe(ms.HeapAlloc)
		}
	}
}

func (s *sampler) observe(heap uint64) {
	if heap > s.base && heap-s.base > s.peak {
		s.peak = heap - s.base
	}
}
