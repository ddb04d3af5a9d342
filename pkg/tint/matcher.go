package tint

import (
	"strings"

	"github.com/agext/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Mode selects how MatchName compares a query against candidate names.
type Mode int

const (
	// ModeExact accepts only case-insensitive equality after normalisation.
	ModeExact Mode = iota
	// ModeFuzzy additionally tolerates misspellings, partial names and
	// abbreviations.
	ModeFuzzy
)

// String returns the mode name for logging and error messages.
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// Normalize canonicalises a colour name for comparison: surrounding
// whitespace is trimmed, then the string is Unicode case-folded and
// NFKC-normalised. Folding handles more than lowercasing does, e.g.
// "WEISS" and "weiß" both normalise to "weiss".
func Normalize(s string) string {
	folded := cases.Fold().String(strings.TrimSpace(s))
	return norm.NFKC.String(folded)
}

// Score rates the similarity of a query against a candidate colour name on
// a fixed 0-100 scale. 100 is returned only for normalised equality; 0 means
// the strings share no characters at all. Between those, the score is the
// best of three measures:
//
//   - normalised Levenshtein similarity, which handles misspellings
//     ("redish" vs "red"),
//   - substring containment scaled by length ratio, which handles partial
//     names ("green" vs "dark green"),
//   - ordered-subsequence matching scaled by length ratio, which handles
//     abbreviations ("dk grn" vs "dark green").
func Score(query, candidate string) int {
	return score(Normalize(query), Normalize(candidate))
}

// score is the scoring kernel over already-normalised strings.
func score(query, candidate string) int {
	if query == candidate {
		return 100
	}
	if query == "" || candidate == "" || !shareRunes(query, candidate) {
		return 0
	}

	s := int(levenshtein.Similarity(query, candidate, levenshtein.NewParams())*100 + 0.5)

	if c := containmentScore(query, candidate); c > s {
		s = c
	}
	if fuzzy.MatchNormalizedFold(query, candidate) {
		if c := lengthRatioScore(query, candidate); c > s {
			s = c
		}
	}

	// Equality was handled above; anything else must stay below 100.
	if s > 99 {
		s = 99
	}
	return s
}

// containmentScore scores one string containing the other as a substring,
// scaled by the length ratio so that near-complete containment scores high.
func containmentScore(a, b string) int {
	if !strings.Contains(a, b) && !strings.Contains(b, a) {
		return 0
	}
	return lengthRatioScore(a, b)
}

// lengthRatioScore returns 100 * len(shorter) / len(longer) in runes.
func lengthRatioScore(a, b string) int {
	la, lb := len([]rune(a)), len([]rune(b))
	if la > lb {
		la, lb = lb, la
	}
	if lb == 0 {
		return 0
	}
	return la * 100 / lb
}

// shareRunes reports whether the two strings have at least one rune in
// common. Strings with none are considered unrelated and score 0.
func shareRunes(a, b string) bool {
	seen := make(map[rune]bool, len(a))
	for _, r := range a {
		seen[r] = true
	}
	for _, r := range b {
		if seen[r] {
			return true
		}
	}
	return false
}
