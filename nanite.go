// Package nanite fits contact-mechanics models to atomic force microscopy
// force-indentation curves and extracts a sample's Young's modulus.
//
// The built-in model is the Hertz model for a paraboloidal indenter:
//
//	F(δ) = 4/3 · E/(1-ν²) · √R · (cp - δ)^(3/2) + baseline   for δ < cp
//	F(δ) = baseline                                          otherwise
//
// # Core Features
//
//   - Analytical forward model with default initial values and bounds
//   - Residuals with optional down-weighting near the contact point
//   - Bounded nonlinear least-squares fitting via gonum optimizers
//   - Compact binary curve archives (None, Zstd, S2, LZ4) with xxHash64 checksums
//
// # Basic Usage
//
// Fitting a curve read from CSV:
//
//	c, _ := nanite.ReadCurve(f)
//	res, err := nanite.Fit(ctx, c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e, _ := res.Params.Value(model.KeyYoungsModulus)
//
// Archiving a curve:
//
//	data, _ := nanite.EncodeCurve(c, curve.WithCompression(format.CompressionZstd))
//	restored, _ := nanite.DecodeCurve(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the model, fit
// and curve packages, simplifying the most common use cases. For fine-grained
// control, use those packages directly.
package nanite

import (
	"context"
	"io"

	"github.com/nanite-go/nanite/curve"
	"github.com/nanite-go/nanite/fit"
	"github.com/nanite-go/nanite/model"
)

// HertzParaboloidal returns the Hertz paraboloidal indentation model.
func HertzParaboloidal() model.Model {
	return model.NewHertzParaboloidal()
}

// Model returns the registered model for key, e.g. "hertz_para".
//
// Returns errs.ErrUnknownModel with the list of supported keys for an unknown key.
func Model(key string) (model.Model, error) {
	return model.Get(key)
}

// NewCurve creates a curve from delta (m) and force (N) samples.
//
// Parameters:
//   - delta: Tip positions, ascending or descending
//   - force: Measured forces, aligned with delta
//
// Returns:
//   - curve.Curve: A curve owning copies of both slices
//   - error: errs.ErrEmptyCurve or errs.ErrLengthMismatch
func NewCurve(delta, force []float64) (curve.Curve, error) {
	return curve.New(delta, force)
}

// ReadCurve reads a two-column delta,force CSV curve.
func ReadCurve(r io.Reader) (curve.Curve, error) {
	return curve.ReadCSV(r)
}

// EncodeCurve serializes a curve into a binary archive.
//
// Available options:
//   - curve.WithCompression(format.CompressionNone|Zstd|S2|LZ4), default Zstd
//   - curve.WithLittleEndian() / curve.WithBigEndian()
func EncodeCurve(c curve.Curve, opts ...curve.EncoderOption) ([]byte, error) {
	return curve.Encode(c, opts...)
}

// DecodeCurve parses a binary archive produced by EncodeCurve.
//
// Returns an error wrapping errs.ErrChecksumMismatch, errs.ErrTruncatedPayload
// or a header error for damaged input.
func DecodeCurve(data []byte) (curve.Curve, error) {
	return curve.Decode(data)
}

// Fit fits the Hertz paraboloidal model to c starting from its default
// parameters: E, contact point and baseline free, R = 10 µm and ν = 0.5 fixed.
//
// Use fit.Fit directly to supply a different model or parameter set.
//
// Example:
//
//	res, err := nanite.Fit(ctx, c, fit.WithMethod(fit.MethodLBFGS))
func Fit(ctx context.Context, c curve.Curve, opts ...fit.Option) (*fit.Result, error) {
	m := model.NewHertzParaboloidal()

	return fit.Fit(ctx, m, c, m.Defaults(), opts...)
}
