package section

import (
	"fmt"

	"github.com/nanite-go/nanite/errs"
)

// CurveHeader is the fixed-size header at the start of a curve archive.
type CurveHeader struct {
	// Flag holds options, magic number and compression. Byte offset 0-2.
	Flag CurveFlag
	// PointCount is the number of (delta, force) pairs. Byte offset 4-7.
	PointCount uint32
	// PayloadSize is the stored payload length after compression. Byte offset 8-11.
	PayloadSize uint32
}

// NewCurveHeader creates a header for pointCount samples with a default flag.
func NewCurveHeader(pointCount int) (*CurveHeader, error) {
	if pointCount < 0 || pointCount > MaxPoints {
		return nil, fmt.Errorf("%w: %d", errs.ErrTooManyDataPoints, pointCount)
	}

	return &CurveHeader{
		Flag:       NewCurveFlag(),
		PointCount: uint32(pointCount),
	}, nil
}

// RawPayloadSize returns the uncompressed payload length.
func (h *CurveHeader) RawPayloadSize() int {
	return int(h.PointCount) * PointSize
}

// Bytes serializes the header.
func (h *CurveHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.PointCount)
	engine.PutUint32(b[8:12], h.PayloadSize)

	return b
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *CurveHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Compression = data[2]
	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if data[3] != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	engine := h.Flag.GetEndianEngine()
	h.PointCount = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	if engine.Uint32(data[12:16]) != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if h.PointCount > MaxPoints {
		return fmt.Errorf("%w: %d", errs.ErrTooManyDataPoints, h.PointCount)
	}

	return nil
}

// ParseCurveHeader parses a CurveHeader from the start of data.
func ParseCurveHeader(data []byte) (CurveHeader, error) {
	if len(data) < HeaderSize {
		return CurveHeader{}, errs.ErrInvalidHeaderSize
	}

	var h CurveHeader
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return CurveHeader{}, err
	}

	return h, nil
}
