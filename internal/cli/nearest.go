package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/tint/pkg/tint"
	"github.com/spf13/cobra"
)

var (
	// Nearest command flags
	nearestLocale string
	nearestMetric string
	nearestFilter []string
	nearestJSON   bool
)

// nearestCmd represents the nearest command
var nearestCmd = &cobra.Command{
	Use:   "nearest <hex>",
	Short: "Resolve a hex value to the closest colour name",
	Long: `Resolve an sRGB hex value to the canonical name of the closest colour
in a locale. A distance of 0 means the value is in the tables exactly;
higher means worse.

The default metric is plain Euclidean distance in RGB space; ciede2000
selects the perceptual delta-E 2000 metric instead.

Examples:
  # Closest english name
  tint nearest ff1010

  # Closest german name under the perceptual metric
  tint nearest --locale de --metric ciede2000 "#013220"

  # Restrict the candidates
  tint nearest --filter white --filter black eae0c8`,
	Args: cobra.ExactArgs(1),
	RunE: runNearest,
}

func init() {
	nearestCmd.Flags().StringVarP(&nearestLocale, "locale", "l", "en", "locale to search")
	nearestCmd.Flags().StringVar(&nearestMetric, "metric", "euclidean", "distance metric (euclidean, ciede2000)")
	nearestCmd.Flags().StringArrayVar(&nearestFilter, "filter", nil, "restrict candidates to these names (repeatable)")
	nearestCmd.Flags().BoolVar(&nearestJSON, "json", false, "output as JSON")
}

// runNearest executes the nearest command.
func runNearest(cmd *cobra.Command, args []string) error {
	hexCode := args[0]
	logger := newLogger(cmd)

	registry, err := defaultRegistry(nearestMetric)
	if err != nil {
		return fmt.Errorf("failed to load colour tables: %w", err)
	}

	logger.Debug("finding nearest colour name",
		"hex", hexCode, "locale", nearestLocale, "metric", nearestMetric, "filter", nearestFilter)

	var result tint.FindResult
	if len(nearestFilter) > 0 {
		result, err = registry.FindNearestAmong(hexCode, nearestLocale, nearestFilter)
	} else {
		result, err = registry.FindNearest(hexCode, nearestLocale)
	}
	if err != nil {
		return err
	}

	if nearestJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	rgb, err := tint.ParseHex(hexCode)
	if err != nil {
		return err
	}
	fmt.Printf("%s%s distance=%.3f\n", colourPreview(rgb), result.ColorName, result.Distance)
	return nil
}
