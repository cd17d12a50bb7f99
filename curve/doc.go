// Package curve holds AFM indentation curves and their binary archive form.
//
// A Curve pairs a tip-position column (delta, meters) with a force column
// (newtons). The delta column may be recorded in either order; Ascending
// reports which, and the model adapter handles both.
//
// Curves are read from two-column text files with ReadCSV and stored compactly
// with Encode and Decode:
//
//	c, err := curve.ReadCSV(f)
//	data, err := curve.Encode(c, curve.WithCompression(format.CompressionZstd))
//	restored, err := curve.Decode(data)
package curve
