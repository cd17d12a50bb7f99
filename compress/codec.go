package compress

import (
	"fmt"

	"github.com/nanite-go/nanite/errs"
	"github.com/nanite-go/nanite/format"
)

// Compressor compresses a curve payload.
//
// The returned slice is owned by the caller; the input is never modified.
// Empty input yields a nil result.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Corrupted input, or input produced by a different algorithm, returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor restores a payload whose decompressed size is known up
// front. Output beyond size is never materialized; a payload that decodes to
// any other length returns an error wrapping errs.ErrTruncatedPayload.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
	SizedDecompressor
}

func sizeMismatch(have, want int) error {
	return fmt.Errorf("%w: payload decodes to %d bytes, expected %d", errs.ErrTruncatedPayload, have, want)
}

func sizeExceeded(want int) error {
	return fmt.Errorf("%w: payload decodes to more than %d bytes", errs.ErrTruncatedPayload, want)
}

// Stats summarizes one compression of a payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size divided by original size, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// CompressWithStats compresses data with the codec registered for
// compressionType and reports the resulting sizes.
func CompressWithStats(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return out, Stats{
		Algorithm:      compressionType,
		OriginalSize:   len(data),
		CompressedSize: len(out),
	}, nil
}
