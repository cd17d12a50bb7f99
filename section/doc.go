// Package section defines the fixed-size header of a nanite curve archive.
//
// Archive layout:
//
//	+--------+------------------------------+----------+
//	| header | payload (maybe compressed)   | checksum |
//	| 16 B   | PayloadSize bytes            | 8 B      |
//	+--------+------------------------------+----------+
//
// Header layout (byte offsets):
//
//	0-1   options: bit 0 ascending delta, bit 1 big-endian, bits 4-15 magic
//	2     compression type
//	3     reserved, must be 0
//	4-7   point count
//	8-11  payload size in bytes
//	12-15 reserved, must be 0
//
// The options field is always little-endian so the byte order of the rest of
// the archive can be read from it. The uncompressed payload holds the delta
// column followed by the force column as float64 values; the checksum is the
// xxHash64 of those uncompressed bytes.
package section
