package channel

import (
	"fmt"
	"runtime"
	"strings"
)

const pcFrames = 256

// NewPanicError creates a new PanicError with the given recovered panic value.
// The caller stack frames are captured and attached.
func NewPanicError(recovered any) *PanicError {
	pcs := make([]uintptr, pcFrames)
	pcs = pcs[:runtime.Callers(2, pcs)]
	return &PanicError{recovered: recovered, pcs: pcs}
}

// PanicError represents a wrapped recovered panic value.
type PanicError struct {
	recovered any
	pcs       []uintptr
}

// Recovered returns the original value.
func (e *PanicError) Recovered() any {
	return e.recovered
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.recovered)
}

// Unwrap returns the recovered value if it is itself an error,
// otherwise returns nil.
func (e *PanicError) Unwrap() error {
	if wrapped, ok := e.recovered.(error); ok {
		return wrapped
	}
	return nil
}

// StackTrace returns a multiline rendering of the originally captured stack,
// approximating the format of an uncaught panic.
func (e *PanicError) StackTrace() string {
	var sb strings.Builder
	frames := runtime.CallersFrames(e.pcs)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
