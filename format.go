// format.go — the four-level chain renderer and fmt.Formatter wiring.
//
// Behavior:
//
//	%s        → Compact:   single line, outermost message (or first value text).
//	%v        → Flat:      one line per record, outermost first.
//	%+v       → Debug:     Flat plus origin frames indented under the root.
//	%#v       → DebugFull: Debug plus each record's own call site.
//	%q        → quoted Compact.
//
// Rationale:
//   - Keep core free of logging/HTTP/JSON policy; only fmt formatting.
//   - Output is stable and diffable: record order is chain order, frame
//     order is capture order, and color never changes the byte content
//     beyond the escape codes themselves.
//   - An empty trace renders as no trace section at all ("no trace
//     available" is silence, not an error).
package vexerror

import (
	"fmt"
	"io"
	"strings"
)

// Verbosity selects one of the four fixed renderings.
type Verbosity int

const (
	// Compact is the default user-visible form: one line, no trace.
	Compact Verbosity = iota
	// Flat renders one line per record, outermost context first.
	Flat
	// Debug adds the origin trace beneath the root record's line.
	Debug
	// DebugFull is Debug with each record's own call site appended, so
	// the full wrap path is visible, not just the origin.
	DebugFull
)

// Render produces the textual form of err at the chosen verbosity.
// Foreign (non-chain) errors render as their own Error() text at every
// level. Render(nil, ...) is "".
func Render(err error, v Verbosity) string {
	if err == nil {
		return ""
	}
	rec, ok := err.(*Record)
	if !ok {
		return err.Error()
	}
	c := newColorizer()
	switch v {
	case Compact:
		return renderCompact(rec, c)
	case Flat:
		return renderChain(rec, c, false, false)
	case Debug:
		return renderChain(rec, c, true, false)
	case DebugFull:
		return renderChain(rec, c, true, true)
	default:
		return renderCompact(rec, c)
	}
}

// renderCompact walks outward-in and returns the first non-empty message,
// falling back to the first lifted value's display text.
func renderCompact(rec *Record, c *colorizer) string {
	for r := rec; r != nil; r = r.cause {
		if r.msg != "" {
			return c.red(r.msg)
		}
		if r.value != nil {
			return c.red(r.value.err.Error())
		}
	}
	return ""
}

// renderChain produces the Flat body and, when withTrace is set, the root
// record's origin frames indented beneath it. withLoc appends each
// record's own call site to its line.
func renderChain(rec *Record, c *colorizer, withTrace, withLoc bool) string {
	var b strings.Builder
	first := true
	var root *Record
	for r := rec; r != nil; r = r.cause {
		root = r
		line := ""
		switch {
		case r.msg != "":
			line = r.msg
		case r.value != nil:
			line = r.value.err.Error()
		default:
			// Empty wrap: call site recorded, nothing to say.
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(c.red(line))
		if withLoc && !r.loc.IsZero() {
			fmt.Fprintf(&b, " (%s)", r.loc)
		}
	}
	if withTrace && root != nil {
		writeTrace(&b, root.trace, c)
	}
	return b.String()
}

// writeTrace appends one line per origin frame, indented beneath the chain
// body. Symbols are the colorized part; file:line stays plain for easy
// copy into editors.
func writeTrace(w io.Writer, trace Trace, c *colorizer) {
	for _, fr := range trace {
		sym := fr.Function
		if sym == "" {
			sym = "<unknown>"
		}
		_, _ = fmt.Fprintf(w, "\n  %s %s:%d", c.cyan(sym), fr.File, fr.Line)
	}
}

// Format implements fmt.Formatter for chains. See the file header for the
// verb table.
func (r *Record) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		switch {
		case s.Flag('+'):
			_, _ = io.WriteString(s, Render(r, Debug))
		case s.Flag('#'):
			_, _ = io.WriteString(s, Render(r, DebugFull))
		default:
			_, _ = io.WriteString(s, Render(r, Flat))
		}
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", Render(r, Compact))
	default:
		_, _ = io.WriteString(s, Render(r, Compact))
	}
}
