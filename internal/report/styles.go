package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)

// palette selects the styles for one rendering; plain output uses
// identity functions so the text is byte-for-byte stable.
type palette struct {
	styled  bool
	heading func(...string) string
	success func(...string) string
	failure func(...string) string
	err     func(...string) string
	warning func(...string) string
	muted   func(...string) string
}

func plain(s ...string) string {
	return strings.Join(s, " ")
}

// newPalette binds styles to out. Once the caller has decided to style,
// the colour profile is forced so piped output keeps its colours.
func newPalette(out io.Writer, styled bool) palette {
	if !styled {
		return palette{heading: plain, success: plain, failure: plain, err: plain, warning: plain, muted: plain}
	}

	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI256)

	return palette{
		styled:  true,
		heading: r.NewStyle().Bold(true).Foreground(ColorPrimary).Render,
		success: r.NewStyle().Bold(true).Foreground(ColorSuccess).Render,
		failure: r.NewStyle().Bold(true).Foreground(ColorError).Render,
		err:     r.NewStyle().Foreground(ColorError).Render,
		warning: r.NewStyle().Foreground(ColorWarning).Render,
		muted:   r.NewStyle().Foreground(ColorMuted).Render,
	}
}
