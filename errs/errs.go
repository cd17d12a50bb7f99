// Package errs defines the sentinel errors returned by nanite packages.
//
// Callers should match these with errors.Is, since most call sites wrap them
// with additional context.
package errs

import "errors"

// Curve and residual input errors.
var (
	// ErrEmptyCurve is returned when a curve or sample sequence has no points.
	ErrEmptyCurve = errors.New("curve has no data points")
	// ErrLengthMismatch is returned when paired sequences differ in length.
	ErrLengthMismatch = errors.New("sequence lengths do not match")
	// ErrMalformedCSV is returned when a curve text file cannot be parsed.
	ErrMalformedCSV = errors.New("malformed curve csv")
)

// Parameter and model errors.
var (
	// ErrUnknownParameter is returned when a parameter key is not in the set.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrDuplicateParameter is returned when a key is added twice to a set.
	ErrDuplicateParameter = errors.New("duplicate parameter")
	// ErrParameterDomain is returned when a parameter value lies outside its physical domain.
	ErrParameterDomain = errors.New("parameter outside valid domain")
	// ErrInvalidBounds is returned when a parameter's lower bound exceeds its upper bound.
	ErrInvalidBounds = errors.New("invalid parameter bounds")
	// ErrUnknownModel is returned when a model key is not registered.
	ErrUnknownModel = errors.New("unknown model")
	// ErrNoFreeParameters is returned when a fit is requested with every parameter fixed.
	ErrNoFreeParameters = errors.New("no free parameters to fit")
	// ErrUnknownMethod is returned for an unrecognized optimization method name.
	ErrUnknownMethod = errors.New("unknown optimization method")
)

// Curve archive errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrTruncatedPayload   = errors.New("payload is truncated")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrTooManyDataPoints  = errors.New("too many data points")
)
