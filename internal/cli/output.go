package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes. Domain outcomes (a user with no page, a language with no
// translation) exit 1; malformed input and bad flags exit 2.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ExitError pairs an error with the exit code the process should
// terminate with.
type ExitError struct {
	Code    int
	Message string
	Err     error // underlying cause, nil when the message stands alone
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError builds an ExitError from a code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code and message to an existing error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode recovers the exit code from an error chain.
// Errors that carry no ExitError map to ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders command results as text or JSON.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostics; nil means share Writer
	Verbose   bool
}

// CLIResponse is the JSON envelope every command emits.
// Case names the partition the input classified into (the auth role,
// the matched language); it is present even on errors, since a
// classified input can still fail afterwards.
type CLIResponse struct {
	Status string      `json:"status"` // "ok" or "error"
	Case   string      `json:"case,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
}

// CLIError carries a stable domain code ("NOT_FOUND",
// "NO_TRANSLATION") alongside the human-readable message.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes a successful result. caseName may be empty when the
// command did no classification.
func (f *OutputFormatter) Success(caseName string, data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Case:   caseName,
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error writes a failed result, keeping whatever case was established
// before the failure.
func (f *OutputFormatter) Error(caseName, code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Case:   caseName,
			Error: &CLIError{
				Code:    code,
				Message: message,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return nil
}

// VerboseLog writes a diagnostic line when verbose mode is on.
// Goes to ErrWriter so JSON on Writer stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
