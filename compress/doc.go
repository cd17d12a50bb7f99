// Package compress provides the payload codecs used by nanite curve archives.
//
// A curve archive stores two float64 columns (indentation and force). The
// column bytes are handed to one of the codecs below before they are written:
//
//   - None: payload stored as-is
//   - Zstd: best ratio, suited to long-term storage of measurement series
//   - S2: fast with a reasonable ratio
//   - LZ4: fastest decompression
//
// Zstd is backed by github.com/klauspost/compress/zstd by default. Building
// with the gozstd tag (and cgo enabled) switches to github.com/valyala/gozstd.
// Both produce standard zstd frames, so archives are interchangeable.
//
// All codecs are stateless values and safe for concurrent use.
package compress
