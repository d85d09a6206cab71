// Package output emits the single-line JSON result objects that form the
// bridge's contract with the hosting application. Every command writes exactly
// one line to the output writer: a success object, a uniform failure object,
// or a bare error object for invocation mistakes.
package output

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrFailed signals that a command failed after its result JSON was already
// emitted. The top-level error handler exits non-zero without printing
// anything further.
var ErrFailed = errors.New("command failed")

// Failure is the uniform failure object shared by all commands.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// invocationError is the bare error object for unknown commands and missing
// arguments, emitted before any work begins.
type invocationError struct {
	Error string `json:"error"`
}

// Emit writes v as a single JSON line.
func Emit(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Fail emits the uniform failure object for err and returns ErrFailed.
func Fail(w io.Writer, err error) error {
	return FailMessage(w, err.Error())
}

// FailMessage emits the uniform failure object with the given message and
// returns ErrFailed.
func FailMessage(w io.Writer, message string) error {
	if err := Emit(w, Failure{Success: false, Error: message}); err != nil {
		return err
	}
	return ErrFailed
}

// Usage emits a bare error object for an invocation mistake (unknown command,
// missing arguments) and returns ErrFailed.
func Usage(w io.Writer, message string) error {
	if err := Emit(w, invocationError{Error: message}); err != nil {
		return err
	}
	return ErrFailed
}
