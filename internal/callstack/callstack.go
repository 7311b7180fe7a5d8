// Package callstack derives a caller identity from the runtime call stack.
package callstack

import "runtime"

// Caller returns the fully qualified function name of the frame skip levels
// above the caller of this function, e.g.
// "github.com/acme/app/worker.(*Pool).drain". skip 0 names the immediate
// caller. Returns "" when the stack cannot be resolved that far.
func Caller(skip int) string {
	pc := make([]uintptr, 1)
	if runtime.Callers(skip+2, pc) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pc).Next()
	return frame.Function
}
