package tint

import (
	"errors"
	"sync"
	"testing"
)

// testData builds a small two-locale data set used across registry tests.
func testData() map[string][]Definition {
	return map[string][]Definition{
		"en": {
			{Name: "red", Hex: "ff0000"},
			{Name: "blue", Hex: "0000ff"},
			{Name: "dark green", Hex: "013220"},
			{Name: "white", Hex: "ffffff"},
		},
		"de": {
			{Name: "rot", Hex: "ff0000"},
			{Name: "weiß", Hex: "ffffff"},
		},
	}
}

func mustRegistry(t *testing.T, data map[string][]Definition, opts ...Option) *Registry {
	t.Helper()
	r, err := New(data, opts...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return r
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string][]Definition
		wantErr bool
	}{
		{
			name: "valid data",
			data: testData(),
		},
		{
			name: "invalid hex code",
			data: map[string][]Definition{
				"en": {{Name: "red", Hex: "xyzzy"}},
			},
			wantErr: true,
		},
		{
			name: "ambiguous name",
			data: map[string][]Definition{
				"en": {
					{Name: "red", Hex: "ff0000"},
					{Name: "red", Hex: "ee0000"},
				},
			},
			wantErr: true,
		},
		{
			name: "ambiguous after normalisation",
			data: map[string][]Definition{
				"de": {
					{Name: "weiß", Hex: "ffffff"},
					{Name: "WEISS", Hex: "fefefe"},
				},
			},
			wantErr: true,
		},
		{
			name: "empty name",
			data: map[string][]Definition{
				"en": {{Name: "   ", Hex: "ff0000"}},
			},
			wantErr: true,
		},
		{
			name: "duplicate pair is tolerated",
			data: map[string][]Definition{
				"en": {
					{Name: "red", Hex: "ff0000"},
					{Name: "red", Hex: "#FF0000"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatal("New succeeded, want error")
				}
				if !errors.Is(err, ErrInvalidColorModel) {
					t.Errorf("New error = %v, want ErrInvalidColorModel", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
		})
	}
}

func TestNewDeduplicates(t *testing.T) {
	r := mustRegistry(t, map[string][]Definition{
		"en": {
			{Name: "red", Hex: "ff0000"},
			{Name: "Red", Hex: "#FF0000"},
			{Name: "blue", Hex: "0000ff"},
		},
	})

	entries, err := r.Entries("en")
	if err != nil {
		t.Fatalf("Entries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2 after deduplication", len(entries))
	}
}

func TestMatchNameExact(t *testing.T) {
	r := mustRegistry(t, testData())

	got, err := r.MatchName("red", "en", ModeExact)
	if err != nil {
		t.Fatalf("MatchName returned error: %v", err)
	}
	want := MatchResult{HexCode: "ff0000", Score: 100}
	if got != want {
		t.Errorf("MatchName = %+v, want %+v", got, want)
	}
}

func TestMatchNameExactIsCaseInsensitive(t *testing.T) {
	r := mustRegistry(t, testData())

	tests := []struct {
		query  string
		locale string
		hex    string
	}{
		{query: "RED", locale: "en", hex: "ff0000"},
		{query: "  Dark Green ", locale: "en", hex: "013220"},
		{query: "WEISS", locale: "de", hex: "ffffff"},
		{query: "weiß", locale: "de", hex: "ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := r.MatchName(tt.query, tt.locale, ModeExact)
			if err != nil {
				t.Fatalf("MatchName(%q) returned error: %v", tt.query, err)
			}
			if got.HexCode != tt.hex || got.Score != 100 {
				t.Errorf("MatchName(%q) = %+v, want hex %q score 100", tt.query, got, tt.hex)
			}
		})
	}
}

func TestMatchNameFuzzy(t *testing.T) {
	r := mustRegistry(t, testData())

	got, err := r.MatchName("redish", "en", ModeFuzzy)
	if err != nil {
		t.Fatalf("MatchName returned error: %v", err)
	}
	if got.HexCode != "ff0000" {
		t.Errorf("MatchName(\"redish\") hex = %q, want %q", got.HexCode, "ff0000")
	}
	if got.Score <= 0 || got.Score >= 100 {
		t.Errorf("MatchName(\"redish\") score = %d, want 0 < score < 100", got.Score)
	}
}

func TestMatchNameErrors(t *testing.T) {
	r := mustRegistry(t, testData())

	tests := []struct {
		name    string
		query   string
		locale  string
		mode    Mode
		wantErr error
	}{
		{
			name:    "unknown locale",
			query:   "red",
			locale:  "xx",
			mode:    ModeFuzzy,
			wantErr: ErrUnknownLocale,
		},
		{
			name:    "no exact match",
			query:   "zzz",
			locale:  "en",
			mode:    ModeExact,
			wantErr: ErrNoMatch,
		},
		{
			name:    "fuzzy match misses disjoint query",
			query:   "qqq",
			locale:  "de",
			mode:    ModeFuzzy,
			wantErr: ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.MatchName(tt.query, tt.locale, tt.mode)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("MatchName error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatchNameTieBreaksByScanOrder(t *testing.T) {
	// Both candidates are one substitution away from the query, so they
	// score identically; the first in input order must win.
	r := mustRegistry(t, map[string][]Definition{
		"en": {
			{Name: "raspberry", Hex: "111111"},
			{Name: "rasoberry", Hex: "222222"},
		},
	})

	got, err := r.MatchName("rasqberry", "en", ModeFuzzy)
	if err != nil {
		t.Fatalf("MatchName returned error: %v", err)
	}
	if got.HexCode != "111111" {
		t.Errorf("tie broken to %q, want first entry 111111", got.HexCode)
	}
}

func TestFindNearest(t *testing.T) {
	r := mustRegistry(t, map[string][]Definition{
		"en": {
			{Name: "red", Hex: "ff0000"},
			{Name: "blue", Hex: "0000ff"},
		},
	})

	got, err := r.FindNearest("ff1010", "en")
	if err != nil {
		t.Fatalf("FindNearest returned error: %v", err)
	}
	if got.ColorName != "red" {
		t.Errorf("nearest = %q, want %q", got.ColorName, "red")
	}
	want := Euclidean{}.Distance(RGB{R: 255, G: 16, B: 16}, RGB{R: 255, G: 0, B: 0})
	if got.Distance != want {
		t.Errorf("distance = %v, want %v", got.Distance, want)
	}
}

func TestFindNearestExactHit(t *testing.T) {
	r := mustRegistry(t, testData())

	got, err := r.FindNearest("#FFFFFF", "en")
	if err != nil {
		t.Fatalf("FindNearest returned error: %v", err)
	}
	if got.ColorName != "white" || got.Distance != 0 {
		t.Errorf("FindNearest(#FFFFFF) = %+v, want white at distance 0", got)
	}
}

func TestFindNearestErrors(t *testing.T) {
	r := mustRegistry(t, testData())

	if _, err := r.FindNearest("not-a-hex", "en"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("FindNearest error = %v, want ErrInvalidFormat", err)
	}
	if _, err := r.FindNearest("ff0000", "xx"); !errors.Is(err, ErrUnknownLocale) {
		t.Errorf("FindNearest error = %v, want ErrUnknownLocale", err)
	}
}

func TestFindNearestTieBreaksByScanOrder(t *testing.T) {
	// Equidistant neighbours either side of the target.
	r := mustRegistry(t, map[string][]Definition{
		"en": {
			{Name: "below", Hex: "7e0000"},
			{Name: "above", Hex: "800000"},
		},
	})

	got, err := r.FindNearest("7f0000", "en")
	if err != nil {
		t.Fatalf("FindNearest returned error: %v", err)
	}
	if got.ColorName != "below" {
		t.Errorf("tie broken to %q, want first entry %q", got.ColorName, "below")
	}
}

func TestFindNearestAmong(t *testing.T) {
	r := mustRegistry(t, testData())

	got, err := r.FindNearestAmong("ff1010", "en", []string{"blue", "white"})
	if err != nil {
		t.Fatalf("FindNearestAmong returned error: %v", err)
	}
	if got.ColorName != "white" {
		t.Errorf("nearest among filter = %q, want %q", got.ColorName, "white")
	}

	// A filter naming nothing in the locale leaves no candidates.
	if _, err := r.FindNearestAmong("ff1010", "en", []string{"nope"}); !errors.Is(err, ErrNoMatch) {
		t.Errorf("FindNearestAmong error = %v, want ErrNoMatch", err)
	}
}

func TestFindNearestWithCIEDE2000(t *testing.T) {
	r := mustRegistry(t, map[string][]Definition{
		"en": {
			{Name: "red", Hex: "ff0000"},
			{Name: "blue", Hex: "0000ff"},
		},
	}, WithMetric(CIEDE2000{}))

	got, err := r.FindNearest("ee0505", "en")
	if err != nil {
		t.Fatalf("FindNearest returned error: %v", err)
	}
	if got.ColorName != "red" {
		t.Errorf("nearest = %q, want %q", got.ColorName, "red")
	}
	if got.Distance <= 0 {
		t.Errorf("distance = %v, want > 0 for inexact hit", got.Distance)
	}
}

func TestLocales(t *testing.T) {
	r := mustRegistry(t, testData())

	got := r.Locales()
	want := []string{"de", "en"}
	if len(got) != len(want) {
		t.Fatalf("Locales() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Locales()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestQueriesAreDeterministic(t *testing.T) {
	r := mustRegistry(t, testData())

	first, err := r.MatchName("redish", "en", ModeFuzzy)
	if err != nil {
		t.Fatalf("MatchName returned error: %v", err)
	}
	firstNearest, err := r.FindNearest("ff1010", "en")
	if err != nil {
		t.Fatalf("FindNearest returned error: %v", err)
	}

	for range 100 {
		m, err := r.MatchName("redish", "en", ModeFuzzy)
		if err != nil || m != first {
			t.Fatalf("MatchName not deterministic: %+v vs %+v (err %v)", m, first, err)
		}
		n, err := r.FindNearest("ff1010", "en")
		if err != nil || n != firstNearest {
			t.Fatalf("FindNearest not deterministic: %+v vs %+v (err %v)", n, firstNearest, err)
		}
	}
}

func TestConcurrentQueries(t *testing.T) {
	r := mustRegistry(t, testData())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if _, err := r.MatchName("redish", "en", ModeFuzzy); err != nil {
					t.Errorf("MatchName returned error: %v", err)
					return
				}
				if _, err := r.FindNearest("013220", "de"); err != nil {
					t.Errorf("FindNearest returned error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
