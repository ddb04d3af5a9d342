package tint

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Metric computes a dissimilarity between two colours.
// Implementations must be symmetric, return 0 only for equal inputs, and be
// safe for concurrent use.
type Metric interface {
	// Distance returns a non-negative dissimilarity; 0 means equal colours.
	Distance(a, b RGB) float64
}

// Euclidean measures straight-line distance in sRGB space. It ignores human
// perception entirely, which keeps it total, fast and locale-independent;
// for the coarse granularity of named colour tables that is adequate.
// This is the registry default.
type Euclidean struct{}

// Distance returns the Euclidean distance between two colours in RGB space.
// The worst case, black to white, is sqrt(3*255²) ≈ 441.67.
func (Euclidean) Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// CIEDE2000 measures perceptual colour difference (delta-E 2000) in Lab
// space. More expensive than Euclidean but closer to how humans judge
// colour similarity; a distance below ~2.3 is a just-noticeable difference.
type CIEDE2000 struct{}

// Distance returns the CIEDE2000 delta-E between two colours.
func (CIEDE2000) Distance(a, b RGB) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}

// toColorful converts an 8-bit RGB value to go-colorful's 0..1 float form.
func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
