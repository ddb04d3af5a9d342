// Package tint matches human readable colour names to sRGB values and back.
//
// A Registry holds locale-scoped tables of named colours. MatchName resolves
// an informal colour description (e.g. "redish") to a canonical hex code via
// exact or fuzzy name matching; FindNearest resolves an arbitrary sRGB value
// to the closest canonical name under a selectable distance metric.
//
// The registry is handed fully-loaded data at construction and is immutable
// afterwards, so any number of goroutines may query it concurrently without
// synchronisation.
package tint

import (
	"fmt"
	"strings"
)

// RGB represents a colour as three 8-bit sRGB channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as a lowercase six-digit hex string without prefix.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex decodes a six-digit hex colour string into an RGB value.
// The input is case-insensitive and may carry a leading "#".
// Returns ErrInvalidFormat for anything else.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q (want 6 hex digits, got %d)", ErrInvalidFormat, s, len(hex))
	}

	var channels [3]uint8
	for i := range channels {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("%w: %q contains a non-hex character", ErrInvalidFormat, s)
		}
		channels[i] = hi<<4 | lo
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// EncodeHex encodes three RGB components as a lowercase six-digit hex string.
// Each component must be in [0, 255]; returns ErrOutOfRange otherwise.
// EncodeHex(ParseHex(s)) yields the canonical lowercase form of any valid s.
func EncodeHex(r, g, b int) (string, error) {
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return "", fmt.Errorf("%w: %d (want 0-255)", ErrOutOfRange, v)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}.Hex(), nil
}

// hexDigit converts a single hex character (either case) to its value.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
