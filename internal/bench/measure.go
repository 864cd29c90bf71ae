package bench

import (
	"sort"
	"time"

	"github.com/Fluxie/return-test/internal/buffer"
)

const (
	// DefaultBatchSize is how many transforms run between two clock reads.
	// A single call is too fast to time, so each sample divides one batch
	// duration by the batch size.
	DefaultBatchSize = 10000

	// DefaultSampleCount is how many batch samples feed the median.
	DefaultSampleCount = 1000
)

// Options tune the measurement loop. Zero values mean defaults.
type Options struct {
	BatchSize   int
	SampleCount int
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.SampleCount <= 0 {
		o.SampleCount = DefaultSampleCount
	}
	return o
}

// Measurement is the representative per-call duration for one configuration.
// Vector carries the container shape through to the report line.
type Measurement struct {
	PerCall time.Duration
	Vector  bool
}

// sink accumulates a value derived from every transform result so the
// compiler cannot discard the copy as dead work. Eliding any write to it
// would change observable program state.
var sink int

// Measure estimates the per-call latency of one transform configuration.
// Each sample times a batch of calls between two monotonic clock reads and
// divides by the batch size; the median of all samples is reported, which
// resists outliers from preemption or allocator spikes in any single batch.
func Measure(cfg Config, data []byte, opts Options) Measurement {
	opts = opts.withDefaults()
	samples := make([]time.Duration, 0, opts.SampleCount)
	for len(samples) < opts.SampleCount {
		start := time.Now()
		for i := 0; i < opts.BatchSize; i++ {
			r := buffer.TryTransform(data, cfg.Capacity, cfg.Shape, cfg.Recovery)
			sink += r.Len()
		}
		elapsed := time.Since(start)
		samples = append(samples, elapsed/time.Duration(opts.BatchSize))
	}
	return Measurement{
		PerCall: median(samples),
		Vector:  cfg.Shape == buffer.Dynamic,
	}
}

// median sorts samples in place and returns the lower median (index len/2).
func median(samples []time.Duration) time.Duration {
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return samples[len(samples)/2]
}
