package bench

import "github.com/Fluxie/return-test/internal/buffer"

// Config selects one code path to measure: a fixed-buffer capacity, the
// container shape, and whether recovery scaffolding sits on the call path.
// A Config is never mutated after creation.
type Config struct {
	Capacity int
	Shape    buffer.Shape
	Recovery buffer.Recovery
}

// Skip reports whether the configuration must not be measured for an input
// of dataLen bytes. A fixed buffer smaller than the input truncates, and a
// truncated copy would time a shorter transformation than the one being
// compared.
func (c Config) Skip(dataLen int) bool {
	return c.Capacity < dataLen
}

// DefaultMatrix returns the capacity/shape/recovery combinations the sweep
// measures, in report order. Every capacity runs both shapes with recovery
// included; capacity 64 additionally runs both shapes with recovery omitted
// so the cost of the scaffolding itself shows up in the comparison.
func DefaultMatrix() []Config {
	var m []Config
	add := func(capacity int, rec buffer.Recovery) {
		m = append(m,
			Config{Capacity: capacity, Shape: buffer.Fixed, Recovery: rec},
			Config{Capacity: capacity, Shape: buffer.Dynamic, Recovery: rec},
		)
	}
	for _, c := range []int{1, 4, 10, 64} {
		add(c, buffer.Include)
	}
	add(64, buffer.Omit)
	for _, c := range []int{128, 256, 512, 1024, 2048, 4096} {
		add(c, buffer.Include)
	}
	return m
}

// DefaultSizes returns the input lengths the sweep generates test vectors
// for: 1..32 squared.
func DefaultSizes() []int {
	sizes := make([]int, 0, 32)
	for s := 1; s <= 32; s++ {
		sizes = append(sizes, s*s)
	}
	return sizes
}
