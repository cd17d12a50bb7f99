package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor applies Zstandard compression. It gives the best ratio of
// the built-in codecs and is the default for archived curves.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// checkFrameContentSize rejects a zstd frame whose header announces a
// content size other than size. Frames without a recorded size pass.
func checkFrameContentSize(data []byte, size int) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return fmt.Errorf("zstd frame header: %w", err)
	}
	if h.HasFCS && h.FrameContentSize != uint64(size) { //nolint:gosec // size is non-negative
		if h.FrameContentSize > uint64(size) { //nolint:gosec // size is non-negative
			return sizeExceeded(size)
		}

		return sizeMismatch(int(h.FrameContentSize), size) //nolint:gosec // smaller than size
	}

	return nil
}
