// stack.go — origin capture for vex-error chains.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Bounded cost: captured at most once per chain, at root creation, with
//     a conservative depth cap.
//   - Graceful degradation: a platform without symbolication yields an
//     empty Trace; rendering treats that as "no trace available", never as
//     an error.
//
// Frame filtering: the capture begins at the caller's first frame (skip
// accounting drops this library's construction machinery) and drops the
// runtime/testing wind-down so the trace focuses on user code. Setting
// VEXERROR_FULLSTACK=1 keeps every resolved frame.
package vexerror

import (
	"os"
	"runtime"
	"strings"
)

// FullTraceEnv, when set to "1", disables origin-trace frame filtering so
// runtime and test-harness frames stay visible.
const FullTraceEnv = "VEXERROR_FULLSTACK"

// Frame represents a single call site in an origin trace.
type Frame struct {
	Function string // fully-qualified symbol name, or "" when unresolvable
	File     string // file path as provided by the runtime
	Line     int
}

// Trace is an origin capture: frames from the lift site outward. Empty
// means no trace is available on this platform.
type Trace []Frame

// defaultMaxDepth bounds the walk; exceptional paths rarely need more.
const defaultMaxDepth = 64

// dependencyPrefixes marks frames that belong to process wind-up/wind-down
// rather than the failing program. Filtered unless FullTraceEnv is set.
var dependencyPrefixes = []string{
	"runtime.",
	"runtime_",
	"testing.",
}

func dependencyFrame(fn string) bool {
	for _, p := range dependencyPrefixes {
		if strings.HasPrefix(fn, p) {
			return true
		}
	}
	return false
}

// callerLocation resolves the single frame 'skip' levels above the caller
// of this function (skip=0 → that caller itself).
func callerLocation(skip int) Location {
	// +2: one for runtime.Callers, one for callerLocation.
	var pcs [3]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return Location{}
	}
	fr, _ := runtime.CallersFrames(pcs[:n]).Next()
	return Location{Function: fr.Function, File: fr.File, Line: fr.Line}
}

// captureTrace walks the stack starting 'skip' levels above the caller of
// this function and returns the filtered Trace. Returns nil when the
// runtime yields no frames.
func captureTrace(skip int) Trace {
	pcs := make([]uintptr, defaultMaxDepth)
	// +2: one for runtime.Callers, one for captureTrace.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	full := os.Getenv(FullTraceEnv) == "1"
	frames := runtime.CallersFrames(pcs[:n])
	out := make(Trace, 0, n)
	for {
		fr, more := frames.Next()
		if full || !dependencyFrame(fr.Function) {
			out = append(out, Frame{
				Function: fr.Function,
				File:     fr.File,
				Line:     fr.Line,
			})
		}
		if !more {
			break
		}
	}
	return out
}
