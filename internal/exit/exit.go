// Package exit carries the message and status the process ends with.
package exit

import (
	"fmt"
	"io"
	"os"
)

// Process exit codes.
const (
	CodeSuccess = 0
	// CodeFailure covers decode, query and output errors.
	CodeFailure = 1
	// CodeUsage is returned for invalid flags or arguments.
	CodeUsage = 2
	// CodeNoMatch is returned when the query matched nothing.
	CodeNoMatch = 3
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	if r.Message == "" {
		return
	}
	fmt.Fprint(r.Output, r.Message)
}

// Success reports a clean exit on stdout.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// Error reports a failure on stderr.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeFailure,
		Message:  message,
	}
}

// Errorf creates an error exit result with formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// Usagef reports an invocation problem on stderr.
func Usagef(format string, a ...any) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeUsage,
		Message:  fmt.Sprintf(format, a...),
	}
}

// NoMatch reports a query that produced no results. It prints nothing.
func NoMatch() *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeNoMatch,
	}
}

// FromError maps err to a failure result, nil to success.
func FromError(err error) *Result {
	if err == nil {
		return Success("")
	}
	return Errorf("Error: %v\n", err)
}
