package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// localesCmd represents the locales command
var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the available colour locales",
	Long:  `List the built-in colour name locales and how many entries each holds.`,
	RunE:  runLocales,
}

// runLocales executes the locales command.
func runLocales(cmd *cobra.Command, args []string) error {
	registry, err := defaultRegistry("euclidean")
	if err != nil {
		return fmt.Errorf("failed to load colour tables: %w", err)
	}

	for _, locale := range registry.Locales() {
		entries, err := registry.Entries(locale)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %d colours\n", locale, len(entries))
	}
	return nil
}
