// Package cli provides the command-line interface for tint.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tint/internal/colordata"
	"github.com/jmylchreest/tint/internal/version"
	"github.com/jmylchreest/tint/pkg/tint"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tint",
	Short: "Friendly colour normalization",
	Long: `Tint resolves informal colour descriptions ("redish") to canonical sRGB
hex values, and resolves arbitrary sRGB values to the closest canonical
colour name.

Colour names are organised into locales: built-in tables exist for
english ("en"), german ("de") and RAL classic ("ral").`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(nearestCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(localesCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// newLogger builds the command logger; Debug level when --verbose is set,
// silent otherwise.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tint",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tint",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// defaultRegistry builds a registry from the built-in colour tables with
// the metric selected on the command line.
func defaultRegistry(metricName string) (*tint.Registry, error) {
	metric, err := metricByName(metricName)
	if err != nil {
		return nil, err
	}
	return colordata.DefaultRegistry(tint.WithMetric(metric))
}

// metricByName resolves the --metric flag value.
func metricByName(name string) (tint.Metric, error) {
	switch name {
	case "euclidean":
		return tint.Euclidean{}, nil
	case "ciede2000":
		return tint.CIEDE2000{}, nil
	default:
		return nil, fmt.Errorf("unknown metric: %s (valid metrics: euclidean, ciede2000)", name)
	}
}
