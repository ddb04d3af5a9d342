// Tint - friendly colour normalization
//
// Tint resolves informal colour descriptions to canonical sRGB values and
// arbitrary sRGB values to the closest canonical colour name, across
// multiple naming locales.
package main

import (
	"github.com/jmylchreest/tint/internal/cli"
)

func main() {
	cli.Execute()
}
