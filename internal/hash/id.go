package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the xxHash64 of a byte payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Float64s computes the xxHash64 over the little-endian IEEE 754 bits of every
// slice in order. The result depends only on the values, not on the slice
// boundaries, so ([a, b], [c]) hashes the same as ([a], [b, c]).
func Float64s(columns ...[]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, col := range columns {
		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
