// Package diag reports fatal user-facing errors and terminates the process.
//
// ErrorAndExit is the single sanctioned path from a usage or unrecoverable
// runtime error to process exit. It never returns to its caller.
package diag

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// ExitError is the panic value raised when an exit hook returns instead of
// ending the process.
type ExitError struct {
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("diag: exit status %d", e.Status)
}

// Reporter writes fatal reports to Out and ends the process through Exit.
type Reporter struct {
	Out  io.Writer
	Exit func(int)

	mu sync.Mutex
}

// NewReporter returns a reporter writing to out and exiting through exit.
func NewReporter(out io.Writer, exit func(int)) *Reporter {
	return &Reporter{Out: out, Exit: exit}
}

var std = NewReporter(os.Stderr, os.Exit)

// Default returns the reporter used by the package-level ErrorAndExit.
func Default() *Reporter {
	return std
}

// ErrorAndExit prints a report to stderr and exits with status.
// See Reporter.ErrorAndExit.
func ErrorAndExit(status uint8, recommendHelp bool, program, message string, args ...any) {
	std.ErrorAndExit(status, recommendHelp, program, message, args...)
}

// ErrorAndExit writes "<program>: <message>" when message is non-empty,
// followed by a --help hint when recommendHelp is set, then calls Exit with
// status. It does not return: if Exit returns, it panics with *ExitError.
func (r *Reporter) ErrorAndExit(status uint8, recommendHelp bool, program, message string, args ...any) {
	var buf bytes.Buffer
	if message != "" {
		buf.WriteString(Format(program, message, args...))
	}
	if recommendHelp {
		fmt.Fprintf(&buf, "Try '%s --help' for more information.\n", program)
	}

	r.mu.Lock()
	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	_, _ = out.Write(buf.Bytes())
	exit := r.Exit
	r.mu.Unlock()

	if exit == nil {
		exit = os.Exit
	}
	exit(int(status))
	panic(&ExitError{Status: int(status)})
}
