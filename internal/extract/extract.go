// Package extract pulls the dominant colours out of an image so they can be
// named against a colour registry.
package extract

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"

	"github.com/jmylchreest/tint/pkg/tint"
)

// Swatch is one dominant colour and its share of the sampled pixels.
type Swatch struct {
	Color  tint.RGB
	Weight float64
}

const (
	maxSwatches   = 64
	maxSamples    = 2000
	maxIterations = 20
	convergence   = 2.0
)

// Dominant extracts up to count dominant colours from an image using
// k-means clustering over a pixel sample. Swatches are returned ordered by
// weight, heaviest first. If the image holds fewer unique colours than
// requested, all of them are returned with equal weight untouched by
// clustering.
func Dominant(img image.Image, count int) ([]Swatch, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("swatch count must be at least 1, got %d", count)
	}
	if count > maxSwatches {
		return nil, fmt.Errorf("swatch count too large: %d (maximum: %d)", count, maxSwatches)
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	unique := uniqueColors(pixels)
	if count >= len(unique) {
		swatches := make([]Swatch, len(unique))
		for i, c := range unique {
			swatches[i] = Swatch{Color: c, Weight: 1.0 / float64(len(unique))}
		}
		return swatches, nil
	}

	centroids, weights := kmeans(pixels, count)

	swatches := make([]Swatch, len(centroids))
	for i, c := range centroids {
		swatches[i] = Swatch{
			Color: tint.RGB{
				R: uint8(math.Round(c.r)),
				G: uint8(math.Round(c.g)),
				B: uint8(math.Round(c.b)),
			},
			Weight: weights[i],
		}
	}

	sort.SliceStable(swatches, func(i, j int) bool {
		return swatches[i].Weight > swatches[j].Weight
	})
	return swatches, nil
}

// point is a position in RGB space during clustering.
type point struct {
	r, g, b float64
}

func (p point) distance(o point) float64 {
	dr := p.r - o.r
	dg := p.g - o.g
	db := p.b - o.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func toPoint(c tint.RGB) point {
	return point{r: float64(c.R), g: float64(c.G), b: float64(c.B)}
}

// samplePixels reads pixels off a grid so large images stay cheap.
func samplePixels(img image.Image) []tint.RGB {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()

	step := 1
	if total > maxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(maxSamples))), 1)
	}

	pixels := make([]tint.RGB, 0, min(total, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, tint.RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

func uniqueColors(pixels []tint.RGB) []tint.RGB {
	seen := make(map[tint.RGB]bool, len(pixels))
	unique := make([]tint.RGB, 0, len(pixels))
	for _, p := range pixels {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	return unique
}

// kmeans clusters the sample into k centroids and returns them with their
// normalised cluster weights.
func kmeans(pixels []tint.RGB, k int) ([]point, []float64) {
	points := make([]point, len(pixels))
	for i, p := range pixels {
		points[i] = toPoint(p)
	}

	centroids := seedCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recompute(points, assignments, k)

		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// seedCentroids picks initial centroids k-means++ style: each subsequent
// seed is chosen with probability proportional to its squared distance
// from the seeds so far.
func seedCentroids(points []point, k int) []point {
	centroids := make([]point, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	dists := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < minDist {
					minDist = d
				}
			}
			dists[i] = minDist * minDist
			total += dists[i]
		}

		if total == 0 {
			// Every remaining point coincides with a seed.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point{r: last.r + 0.1, g: last.g + 0.1, b: last.b + 0.1})
			continue
		}

		target := rand.Float64() * total
		cumulative := 0.0
		for i, d := range dists {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func nearestCentroid(p point, centroids []point) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recompute(points []point, assignments []int, k int) []point {
	sums := make([]point, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].r += p.r
		sums[c].g += p.g
		sums[c].b += p.b
		counts[c]++
	}

	centroids := make([]point, k)
	for i := range k {
		if counts[i] > 0 {
			centroids[i] = point{
				r: sums[i].r / float64(counts[i]),
				g: sums[i].g / float64(counts[i]),
				b: sums[i].b / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}
