package bench

import (
	"fmt"
	"io"

	"github.com/Fluxie/return-test/internal/buffer"
	"github.com/pkg/errors"
)

// SweepOptions select what the sweep measures. Zero values mean the default
// sizes, matrix and measurement tuning.
type SweepOptions struct {
	Sizes  []int
	Matrix []Config
	Batch  Options
}

// Report collects one sweep's measurements: the console report lines and
// the same measurements rendered in Go benchmark format for benchstat.
type Report struct {
	Lines []string
	Bench []string
}

// Sweep generates a test vector per input size, measures every matrix
// configuration against it, and writes one report line per measurement to w.
// Configurations whose capacity is below the input size are skipped
// entirely, so no line is ever backed by a truncated copy.
func Sweep(w io.Writer, opts SweepOptions) (*Report, error) {
	sizes := opts.Sizes
	if sizes == nil {
		sizes = DefaultSizes()
	}
	matrix := opts.Matrix
	if matrix == nil {
		matrix = DefaultMatrix()
	}

	rep := &Report{}
	for _, size := range sizes {
		data := buffer.Generate(size)
		for _, cfg := range matrix {
			if cfg.Skip(len(data)) {
				continue
			}
			m := Measure(cfg, data, opts.Batch)
			line := FormatLine(len(data), cfg, m)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return nil, errors.Wrap(err, "Fprintln")
			}
			rep.Lines = append(rep.Lines, line)
			rep.Bench = append(rep.Bench, FormatBench(len(data), cfg, m))
		}
	}
	return rep, nil
}

// FormatLine renders one console report line.
func FormatLine(dataLen int, cfg Config, m Measurement) string {
	return fmt.Sprintf("Data: %d, Buffer: %d, Duration:%d ns, Vector: %d, Exceptions: %d",
		dataLen, cfg.Capacity, m.PerCall.Nanoseconds(), boolFlag(m.Vector), int(cfg.Recovery))
}

// FormatBench renders the same measurement as a Go benchmark result line so
// stored runs can be compared with benchstat.
func FormatBench(dataLen int, cfg Config, m Measurement) string {
	return fmt.Sprintf("BenchmarkTransform/data=%d/buffer=%d/vector=%d/exceptions=%d 1 %d ns/op",
		dataLen, cfg.Capacity, boolFlag(m.Vector), int(cfg.Recovery), m.PerCall.Nanoseconds())
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
