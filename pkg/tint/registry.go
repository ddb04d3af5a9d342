package tint

import (
	"fmt"
	"slices"
	"strings"
)

// Definition is one raw (name, hex) pair handed to New. The hex code may be
// any case and may carry a leading "#"; it is canonicalised during
// construction.
type Definition struct {
	Name string
	Hex  string
}

// Entry is one named colour held by a registry, with its canonical
// lowercase hex code and decoded RGB value.
type Entry struct {
	Name    string
	HexCode string
	RGB     RGB

	// normName is the comparison form of Name, precomputed once so that
	// queries never mutate shared state.
	normName string
}

// MatchResult is the outcome of MatchName: the canonical hex code of the
// best-scoring entry and its similarity score (100 = exact match).
type MatchResult struct {
	HexCode string `json:"hex_code"`
	Score   int    `json:"score"`
}

// FindResult is the outcome of FindNearest: the canonical name of the
// closest entry and its distance (0 = exact match).
type FindResult struct {
	ColorName string  `json:"color_name"`
	Distance  float64 `json:"distance"`
}

// Registry holds locale-scoped tables of named colours. It is built once by
// New and read-only afterwards, so concurrent queries need no locking.
type Registry struct {
	locales map[string][]Entry
	metric  Metric
}

// Option configures a Registry during construction.
type Option func(*Registry)

// WithMetric selects the distance metric used by FindNearest.
// The default is Euclidean.
func WithMetric(m Metric) Option {
	return func(r *Registry) {
		r.metric = m
	}
}

// New builds a registry from locale-keyed colour definitions.
//
// Names are lowercased and trimmed; hex codes are validated and
// canonicalised. Within a locale, entries keep their input order, which is
// also the scan order used to break ties in MatchName and FindNearest.
// Exact duplicate (name, hex) pairs are deduplicated silently; the same
// name mapped to two different hex codes is ambiguous and returns
// ErrInvalidColorModel, as does any undecodable hex code.
func New(data map[string][]Definition, opts ...Option) (*Registry, error) {
	r := &Registry{
		locales: make(map[string][]Entry, len(data)),
		metric:  Euclidean{},
	}
	for _, opt := range opts {
		opt(r)
	}

	for locale, defs := range data {
		entries := make([]Entry, 0, len(defs))
		hexByName := make(map[string]string, len(defs))

		for _, def := range defs {
			name := strings.ToLower(strings.TrimSpace(def.Name))
			if name == "" {
				return nil, fmt.Errorf("%w: locale %q has an entry with an empty name", ErrInvalidColorModel, locale)
			}

			rgb, err := ParseHex(def.Hex)
			if err != nil {
				return nil, fmt.Errorf("%w: locale %q, name %q: %w", ErrInvalidColorModel, locale, name, err)
			}
			hexCode := rgb.Hex()

			normName := Normalize(name)
			if prev, ok := hexByName[normName]; ok {
				if prev != hexCode {
					return nil, fmt.Errorf("%w: locale %q maps name %q to both %q and %q",
						ErrInvalidColorModel, locale, name, prev, hexCode)
				}
				continue
			}
			hexByName[normName] = hexCode

			entries = append(entries, Entry{
				Name:     name,
				HexCode:  hexCode,
				RGB:      rgb,
				normName: normName,
			})
		}

		r.locales[locale] = entries
	}

	return r, nil
}

// MatchName resolves a colour description to the canonical hex code of the
// best-matching name in the given locale.
//
// In ModeExact only a normalised-equal name qualifies and scores 100. In
// ModeFuzzy every entry with a positive Score qualifies and the highest
// score wins; among equal scores the entry earliest in scan order wins.
// Returns ErrUnknownLocale if the locale is absent and ErrNoMatch if no
// entry qualifies.
func (r *Registry) MatchName(query, locale string, mode Mode) (MatchResult, error) {
	entries, ok := r.locales[locale]
	if !ok {
		return MatchResult{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	normQuery := Normalize(query)

	best := MatchResult{}
	found := false
	for _, e := range entries {
		var s int
		switch {
		case e.normName == normQuery:
			s = 100
		case mode == ModeFuzzy:
			s = score(normQuery, e.normName)
		}

		// Strictly greater keeps the first entry on a tie.
		if s > 0 && s > best.Score {
			best = MatchResult{HexCode: e.HexCode, Score: s}
			found = true
			if s == 100 {
				break
			}
		}
	}

	if !found {
		return MatchResult{}, fmt.Errorf("%w: %q (%s mode, locale %q)", ErrNoMatch, query, mode, locale)
	}
	return best, nil
}

// FindNearest resolves an sRGB hex code to the closest named colour in the
// given locale under the registry's distance metric. Ties are broken by
// scan order. Returns ErrInvalidFormat for a malformed hex code and
// ErrUnknownLocale if the locale is absent.
func (r *Registry) FindNearest(hexCode, locale string) (FindResult, error) {
	return r.findNearest(hexCode, locale, nil)
}

// FindNearestAmong is FindNearest restricted to a subset of names. Filter
// names are normalised before comparison; names absent from the locale are
// ignored. Returns ErrNoMatch if the filter leaves no entries to scan.
func (r *Registry) FindNearestAmong(hexCode, locale string, names []string) (FindResult, error) {
	filter := make(map[string]bool, len(names))
	for _, n := range names {
		filter[Normalize(n)] = true
	}
	return r.findNearest(hexCode, locale, filter)
}

func (r *Registry) findNearest(hexCode, locale string, filter map[string]bool) (FindResult, error) {
	target, err := ParseHex(hexCode)
	if err != nil {
		return FindResult{}, err
	}

	entries, ok := r.locales[locale]
	if !ok {
		return FindResult{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	best := FindResult{}
	found := false
	for _, e := range entries {
		if filter != nil && !filter[e.normName] {
			continue
		}
		d := r.metric.Distance(target, e.RGB)
		if !found || d < best.Distance {
			best = FindResult{ColorName: e.Name, Distance: d}
			found = true
			if d == 0 {
				break
			}
		}
	}

	if !found {
		return FindResult{}, fmt.Errorf("%w: no entries to compare against %q in locale %q", ErrNoMatch, hexCode, locale)
	}
	return best, nil
}

// Locales returns the registry's locale identifiers in sorted order.
func (r *Registry) Locales() []string {
	locales := make([]string, 0, len(r.locales))
	for locale := range r.locales {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales
}

// Entries returns a copy of the entries held for a locale, in scan order.
// Returns ErrUnknownLocale if the locale is absent.
func (r *Registry) Entries(locale string) ([]Entry, error) {
	entries, ok := r.locales[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return slices.Clone(entries), nil
}
