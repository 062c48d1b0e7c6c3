// term.go — the terminal color collaborator.
//
// Rendering consults exactly one on/off switch: color is enabled when
// stdout is a terminal, and VEXERROR_COLOR=0 forces it off regardless of
// detection. Everything else about color (which codes, which parts) is
// fixed here, not configurable.
package vexerror

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorEnv, when set to "0", disables colorized rendering even on a
// terminal.
const ColorEnv = "VEXERROR_COLOR"

type colorizer struct {
	enabled bool
	redCol  *color.Color
	cyanCol *color.Color
}

// noColor never emits escape codes. Error() renders through it so the
// error string stays stable bytes even on a terminal; only the explicit
// Render/Format surfaces consult the terminal.
var noColor = &colorizer{}

// newColorizer snapshots the toggle at render time, mirroring how the
// trace filter reads its env var at capture time.
func newColorizer() *colorizer {
	c := &colorizer{
		enabled: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		redCol:  color.New(color.FgHiRed),
		cyanCol: color.New(color.FgHiCyan),
	}
	if os.Getenv(ColorEnv) == "0" {
		c.enabled = false
	}
	if c.enabled {
		// Bypass the library's own global detection; ours already decided.
		c.redCol.EnableColor()
		c.cyanCol.EnableColor()
	}
	return c
}

// red colorizes message text (the failure narrative).
func (c *colorizer) red(s string) string {
	if !c.enabled {
		return s
	}
	return c.redCol.Sprint(s)
}

// cyan colorizes trace symbols.
func (c *colorizer) cyan(s string) string {
	if !c.enabled {
		return s
	}
	return c.cyanCol.Sprint(s)
}
