// Package endian provides the byte-order engines used to lay out curve
// archive headers and float64 columns.
//
// An EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian,
// so it carries both the Put/Get and the Append methods. Archives default to
// little-endian; the header records which engine wrote the payload.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendFloat64s appends the IEEE 754 bits of each value to dst.
func AppendFloat64s(engine EndianEngine, dst []byte, values []float64) []byte {
	for _, v := range values {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// DecodeFloat64s reads len(dst) float64 values from src into dst.
// src must hold at least 8*len(dst) bytes.
func DecodeFloat64s(engine EndianEngine, dst []float64, src []byte) {
	for i := range dst {
		dst[i] = math.Float64frombits(engine.Uint64(src[i*8:]))
	}
}
