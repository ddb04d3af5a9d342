package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmylchreest/tint/pkg/tint"
	"github.com/spf13/cobra"
)

var (
	// Match command flags
	matchLocale string
	matchExact  bool
	matchJSON   bool
)

// matchResultJSON is the JSON shape of a match, with the locale the best
// entry came from.
type matchResultJSON struct {
	HexCode string `json:"hex_code"`
	Score   int    `json:"score"`
	Locale  string `json:"locale"`
}

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <query>",
	Short: "Resolve a colour description to a hex value",
	Long: `Resolve an informal colour description to the canonical sRGB hex value
of the best-matching colour name.

An exact name match scores 100. Without --exact, fuzzy matching tolerates
misspellings, partial names and abbreviations; lower positive scores mean
worse matches.

Examples:
  # Fuzzy match against every locale
  tint match redish

  # Exact match in the german tables
  tint match --exact --locale de weiss

  # Machine-readable output
  tint match --json "dark greenish"`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchLocale, "locale", "l", "all", "locale to search (en, de, ral, or all)")
	matchCmd.Flags().BoolVar(&matchExact, "exact", false, "require an exact name match")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output as JSON")
}

// runMatch executes the match command.
func runMatch(cmd *cobra.Command, args []string) error {
	query := args[0]
	logger := newLogger(cmd)

	registry, err := defaultRegistry("euclidean")
	if err != nil {
		return fmt.Errorf("failed to load colour tables: %w", err)
	}

	mode := tint.ModeFuzzy
	if matchExact {
		mode = tint.ModeExact
	}

	locales := []string{matchLocale}
	if matchLocale == "all" {
		locales = registry.Locales()
	}

	logger.Debug("matching colour name", "query", query, "mode", mode.String(), "locales", locales)

	// Scan every requested locale and keep the best score; the first
	// locale in order wins a tie.
	var best matchResultJSON
	found := false
	for _, locale := range locales {
		result, err := registry.MatchName(query, locale, mode)
		if err != nil {
			if errors.Is(err, tint.ErrNoMatch) {
				continue
			}
			return err
		}
		logger.Debug("locale result", "locale", locale, "hex", result.HexCode, "score", result.Score)
		if !found || result.Score > best.Score {
			best = matchResultJSON{HexCode: result.HexCode, Score: result.Score, Locale: locale}
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", tint.ErrNoMatch, query)
	}

	if matchJSON {
		out, err := json.MarshalIndent(best, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	rgb, err := tint.ParseHex(best.HexCode)
	if err != nil {
		return err
	}
	fmt.Printf("%s%s score=%d locale=%s\n", colourPreview(rgb), best.HexCode, best.Score, best.Locale)
	return nil
}
