package curve

import (
	"fmt"
	"io"
	"slices"

	"github.com/nanite-go/nanite/compress"
	"github.com/nanite-go/nanite/endian"
	"github.com/nanite-go/nanite/errs"
	"github.com/nanite-go/nanite/format"
	"github.com/nanite-go/nanite/internal/hash"
	"github.com/nanite-go/nanite/internal/options"
	"github.com/nanite-go/nanite/internal/pool"
	"github.com/nanite-go/nanite/section"
)

type encoderConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// EncoderOption configures Encode.
type EncoderOption = options.Option[*encoderConfig]

// WithCompression sets the payload compression. The default is Zstd.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		if !c.IsValid() {
			return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, c)
		}
		cfg.compression = c

		return nil
	})
}

// WithLittleEndian writes the archive in little-endian byte order (default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian writes the archive in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}

// Encode serializes c into a self-contained archive.
func Encode(c Curve, opts ...EncoderOption) ([]byte, error) {
	out := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(out)

	if err := encodeInto(out, c, opts...); err != nil {
		return nil, err
	}

	return slices.Clone(out.Bytes()), nil
}

// EncodeTo writes the archive of c to w and returns the number of bytes
// written. Nothing is written when encoding fails.
func EncodeTo(w io.Writer, c Curve, opts ...EncoderOption) (int64, error) {
	out := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(out)

	if err := encodeInto(out, c, opts...); err != nil {
		return 0, err
	}

	return out.WriteTo(w)
}

// encodeInto appends header, compressed payload and checksum to out.
func encodeInto(out *pool.ByteBuffer, c Curve, opts ...EncoderOption) error {
	if c.Len() == 0 {
		return errs.ErrEmptyCurve
	}

	cfg := encoderConfig{compression: format.CompressionZstd}
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	header, err := section.NewCurveHeader(c.Len())
	if err != nil {
		return err
	}
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetAscending(c.Ascending())
	header.Flag.SetCompressionType(cfg.compression)
	engine := header.Flag.GetEndianEngine()

	raw := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(raw)

	raw.Grow(header.RawPayloadSize())
	raw.B = endian.AppendFloat64s(engine, raw.B, c.delta)
	raw.B = endian.AppendFloat64s(engine, raw.B, c.force)

	payload, _, err := compress.CompressWithStats(cfg.compression, raw.Bytes())
	if err != nil {
		return err
	}
	header.PayloadSize = uint32(len(payload)) //nolint:gosec // bounded by MaxPoints*PointSize

	out.Grow(section.HeaderSize + len(payload) + section.ChecksumSize)
	_, _ = out.Write(header.Bytes())
	_, _ = out.Write(payload)
	out.B = engine.AppendUint64(out.B, hash.Checksum(raw.Bytes()))

	return nil
}

// Decode parses an archive produced by Encode.
func Decode(data []byte) (Curve, error) {
	header, err := section.ParseCurveHeader(data)
	if err != nil {
		return Curve{}, err
	}
	if header.PointCount == 0 {
		return Curve{}, errs.ErrEmptyCurve
	}

	want := section.HeaderSize + int(header.PayloadSize) + section.ChecksumSize
	if len(data) != want {
		return Curve{}, fmt.Errorf("%w: have %d bytes, header describes %d", errs.ErrTruncatedPayload, len(data), want)
	}

	codec, err := compress.GetCodec(header.Flag.CompressionType())
	if err != nil {
		return Curve{}, err
	}

	payload := data[section.HeaderSize : section.HeaderSize+int(header.PayloadSize)]
	raw, err := codec.DecompressSized(payload, header.RawPayloadSize())
	if err != nil {
		return Curve{}, fmt.Errorf("%s decompression failed: %w", header.Flag.CompressionType(), err)
	}

	engine := header.Flag.GetEndianEngine()
	if engine.Uint64(data[want-section.ChecksumSize:]) != hash.Checksum(raw) {
		return Curve{}, errs.ErrChecksumMismatch
	}

	n := int(header.PointCount)
	c := Curve{delta: make([]float64, n), force: make([]float64, n)}
	endian.DecodeFloat64s(engine, c.delta, raw[:n*8])
	endian.DecodeFloat64s(engine, c.force, raw[n*8:])

	return c, nil
}
