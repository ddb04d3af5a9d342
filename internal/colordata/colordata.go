// Package colordata ships the default colour tables and the line format
// they are stored in. The registry core is handed fully-loaded data and
// never touches files itself; this package is the loading side of that
// split.
package colordata

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/jmylchreest/tint/pkg/tint"
)

//go:embed data
var dataFS embed.FS

// Parse reads colour definitions in the data file line format:
//
//	café au lait #a67b5b
//
// i.e. a colour name (whitespace allowed), then a hex code prefixed by "#".
// Blank lines and lines starting with "#" are skipped. Hex codes are
// validated later by the registry, not here.
func Parse(r io.Reader) ([]tint.Definition, error) {
	var defs []tint.Definition

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, hex, found := strings.Cut(line, "#")
		if !found || strings.TrimSpace(hex) == "" {
			return nil, fmt.Errorf("line %d: missing #hex code: %q", lineNo, line)
		}

		defs = append(defs, tint.Definition{
			Name: strings.TrimSpace(name),
			Hex:  strings.TrimSpace(hex),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read colour table: %w", err)
	}

	return defs, nil
}

// Default returns the built-in colour tables, keyed by locale. The locale
// identifier is the embedded file's base name; currently "en", "de" and
// "ral".
func Default() (map[string][]tint.Definition, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded colour tables: %w", err)
	}

	data := make(map[string][]tint.Definition, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if path.Ext(name) != ".txt" {
			continue
		}
		locale := strings.TrimSuffix(name, ".txt")

		f, err := dataFS.Open(path.Join("data", name))
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded table %s: %w", name, err)
		}
		defs, err := Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("embedded table %s: %w", name, err)
		}

		data[locale] = defs
	}

	return data, nil
}

// DefaultRegistry builds a registry from the built-in tables.
func DefaultRegistry(opts ...tint.Option) (*tint.Registry, error) {
	data, err := Default()
	if err != nil {
		return nil, err
	}
	return tint.New(data, opts...)
}
