package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/tint/pkg/tint"
	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	previewWidth = 6
)

// colourPreview returns an ANSI-coloured block for a colour, or the empty
// string when stdout is not a terminal.
func colourPreview(c tint.RGB) string {
	if !stdoutIsTerminal() {
		return ""
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", previewWidth) + ansiReset + " "
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
