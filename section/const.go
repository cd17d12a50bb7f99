package section

import "math"

const (
	// Bit masks of the options field.
	AscendingMask   = 0x0001 // delta sorted ascending when the curve was written
	EndiannessMask  = 0x0002 // 0=little-endian, 1=big-endian
	ReservedMask    = 0x000C // bits 2-3, must be 0
	MagicNumberMask = 0xFFF0 // bits 4-15

	// MagicCurveV1Opt marks a version 1 curve archive.
	MagicCurveV1Opt = 0xC310
)

const (
	HeaderSize   = 16 // fixed header size in bytes
	ChecksumSize = 8  // trailing xxHash64 checksum
	PointSize    = 16 // bytes per (delta, force) pair before compression

	// MaxPoints keeps the uncompressed payload size representable in uint32.
	MaxPoints = math.MaxUint32 / PointSize
)
