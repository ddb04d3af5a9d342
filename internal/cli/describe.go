package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/tint/internal/extract"
	"github.com/jmylchreest/tint/internal/image"
	"github.com/spf13/cobra"
)

var (
	// Describe command flags
	describeColours int
	describeLocale  string
	describeMetric  string
	describeJSON    bool
)

// describedColour is one dominant image colour with its nearest name.
type describedColour struct {
	HexCode  string  `json:"hex_code"`
	Weight   float64 `json:"weight"`
	Name     string  `json:"color_name"`
	Distance float64 `json:"distance"`
}

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <image>",
	Short: "Name the dominant colours of an image",
	Long: `Extract the dominant colours of an image and resolve each to the
closest canonical colour name.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Name the five dominant colours of a wallpaper
  tint describe wallpaper.jpg

  # Eight colours, german names, perceptual metric
  tint describe -c 8 --locale de --metric ciede2000 photo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().IntVarP(&describeColours, "colours", "c", 5, "number of dominant colours to name (1-64)")
	describeCmd.Flags().StringVarP(&describeLocale, "locale", "l", "en", "locale to name colours in")
	describeCmd.Flags().StringVar(&describeMetric, "metric", "euclidean", "distance metric (euclidean, ciede2000)")
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "output as JSON")
}

// runDescribe executes the describe command.
func runDescribe(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	logger := newLogger(cmd)

	registry, err := defaultRegistry(describeMetric)
	if err != nil {
		return fmt.Errorf("failed to load colour tables: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	img, err := image.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	swatches, err := extract.Dominant(img, describeColours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extracted dominant colours", "count", len(swatches))

	described := make([]describedColour, 0, len(swatches))
	for _, s := range swatches {
		result, err := registry.FindNearest(s.Color.Hex(), describeLocale)
		if err != nil {
			return err
		}
		described = append(described, describedColour{
			HexCode:  s.Color.Hex(),
			Weight:   s.Weight,
			Name:     result.ColorName,
			Distance: result.Distance,
		})
	}

	if describeJSON {
		out, err := json.MarshalIndent(described, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for i, d := range described {
		rgb := swatches[i].Color
		fmt.Printf("%s%s %5.1f%%  %s (distance %.3f)\n",
			colourPreview(rgb), d.HexCode, d.Weight*100, d.Name, d.Distance)
	}
	return nil
}
