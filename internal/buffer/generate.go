package buffer

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Generate returns length bytes drawn uniformly from [0,255]. The engine is
// seeded from the system entropy source on every call, so successive calls
// are independently seeded.
func Generate(length int) []byte {
	engine := rand.New(rand.NewSource(seed()))
	data := make([]byte, length)
	for i := range data {
		data[i] = byte(engine.Intn(256))
	}
	return data
}

func seed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
