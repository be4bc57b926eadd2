package report

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Colour modes accepted by ColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled decides whether output written to w should be styled.
//
// "always" and "never" are honoured as given. For "auto" (or anything else)
// styling is off when NO_COLOR or CI is set, TERM is "dumb", or w is not a
// terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
