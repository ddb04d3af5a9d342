package tint

import "errors"

// Sentinel errors returned by the registry and codec. Callers should test
// with errors.Is; the wrapped message names the input that was rejected.
var (
	// ErrInvalidFormat indicates a hex colour string that is not six hex
	// digits (an optional leading # is allowed).
	ErrInvalidFormat = errors.New("invalid hex colour format")

	// ErrOutOfRange indicates an RGB component outside [0, 255].
	ErrOutOfRange = errors.New("rgb component out of range")

	// ErrInvalidColorModel indicates malformed or ambiguous registry
	// construction data.
	ErrInvalidColorModel = errors.New("invalid colour model data")

	// ErrUnknownLocale indicates a query against a locale the registry
	// does not hold.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrNoMatch indicates that no candidate name qualified for the query.
	ErrNoMatch = errors.New("no matching colour name")
)
