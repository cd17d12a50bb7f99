package section

import (
	"github.com/nanite-go/nanite/endian"
	"github.com/nanite-go/nanite/errs"
	"github.com/nanite-go/nanite/format"
)

// CurveFlag packs the archive options and payload compression.
type CurveFlag struct {
	// Options holds the ascending and endianness bits plus the magic number.
	Options uint16
	// Compression is the format.CompressionType of the payload.
	Compression uint8
}

// NewCurveFlag creates a little-endian, uncompressed v1 flag.
func NewCurveFlag() CurveFlag {
	return CurveFlag{
		Options:     MagicCurveV1Opt,
		Compression: uint8(format.CompressionNone),
	}
}

// IsAscending reports whether the stored delta column is ascending.
func (f CurveFlag) IsAscending() bool {
	return f.Options&AscendingMask != 0
}

// SetAscending records the delta order.
func (f *CurveFlag) SetAscending(ascending bool) {
	if ascending {
		f.Options |= AscendingMask
	} else {
		f.Options &^= AscendingMask
	}
}

// IsBigEndian returns whether the payload is big-endian.
func (f CurveFlag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *CurveFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *CurveFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f CurveFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// CompressionType returns the payload compression.
func (f CurveFlag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompressionType sets the payload compression.
func (f *CurveFlag) SetCompressionType(c format.CompressionType) {
	f.Compression = uint8(c)
}

// Validate checks the magic number, reserved bits and compression type.
func (f CurveFlag) Validate() error {
	if f.Options&MagicNumberMask != MagicCurveV1Opt {
		return errs.ErrInvalidMagicNumber
	}
	if f.Options&ReservedMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.CompressionType().IsValid() {
		return errs.ErrInvalidCompression
	}

	return nil
}
