package buffer

// MaxCapacity is the largest fixed buffer the harness exercises.
const MaxCapacity = 4096

// Shape selects the container a transform produces.
type Shape int

const (
	Fixed Shape = iota
	Dynamic
)

// Recovery selects whether the transform carries allocation-failure
// recovery on the call path.
type Recovery int

const (
	Omit Recovery = iota
	Include
)

// FixedBuffer is an inline, capacity-bounded byte container. Construction
// truncates oversized input to the capacity instead of failing, so the
// stored length never exceeds the capacity.
type FixedBuffer struct {
	data [MaxCapacity]byte
	cap  int
	n    int
}

// NewFixed copies min(capacity, len(src)) bytes of src into a fixed buffer.
// Capacities above MaxCapacity are clamped.
func NewFixed(capacity int, src []byte) FixedBuffer {
	if capacity > MaxCapacity {
		capacity = MaxCapacity
	}
	b := FixedBuffer{cap: capacity}
	b.n = copy(b.data[:capacity], src)
	return b
}

func (b *FixedBuffer) Len() int { return b.n }

func (b *FixedBuffer) Cap() int { return b.cap }

// Bytes returns the stored bytes. The slice aliases the buffer's inline
// array and is only valid while the buffer is.
func (b *FixedBuffer) Bytes() []byte { return b.data[:b.n] }

// DynamicBuffer is an exactly-sized, heap-backed byte container.
type DynamicBuffer struct {
	data []byte
}

// NewDynamic copies src into a freshly allocated buffer of exactly len(src)
// bytes.
func NewDynamic(src []byte) DynamicBuffer {
	data := make([]byte, len(src))
	copy(data, src)
	return DynamicBuffer{data: data}
}

func (b *DynamicBuffer) Len() int { return len(b.data) }

func (b *DynamicBuffer) Bytes() []byte { return b.data }

// Result holds the outcome of a transform: one of the two buffer shapes,
// tagged with which one it is. The shape is fixed by the configuration, not
// by the input, but the harness handles both through this one type.
type Result struct {
	shape   Shape
	fixed   FixedBuffer
	dynamic DynamicBuffer
}

func (r *Result) Shape() Shape { return r.shape }

func (r *Result) Len() int {
	if r.shape == Fixed {
		return r.fixed.Len()
	}
	return r.dynamic.Len()
}

func (r *Result) Bytes() []byte {
	if r.shape == Fixed {
		return r.fixed.Bytes()
	}
	return r.dynamic.Bytes()
}

// Transform copies src into the container selected by shape. The fixed shape
// truncates to capacity; the dynamic shape copies everything.
func Transform(src []byte, capacity int, shape Shape) Result {
	if shape == Fixed {
		return Result{shape: Fixed, fixed: NewFixed(capacity, src)}
	}
	return Result{shape: Dynamic, dynamic: NewDynamic(src)}
}

// TryTransform is Transform with optional allocation-failure recovery. In
// Include mode a failed allocation yields an empty dynamic buffer; in Omit
// mode the failure propagates to the caller.
func TryTransform(src []byte, capacity int, shape Shape, rec Recovery) Result {
	if rec == Include {
		return recoverAlloc(func() Result { return Transform(src, capacity, shape) })
	}
	return Transform(src, capacity, shape)
}

// recoverAlloc substitutes an empty dynamic buffer when the transform
// panics. Allocation failure is the only panic the transform can raise, so
// the recover is not filtered further.
func recoverAlloc(transform func() Result) (r Result) {
	defer func() {
		if recover() != nil {
			r = Result{shape: Dynamic}
		}
	}()
	return transform()
}
