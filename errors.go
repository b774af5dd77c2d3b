package epanet

//go:generate go run ./tools/generate

import (
	"errors"
	"fmt"

	"github.com/agiangrant/epanet/internal/ffi"
)

var (
	// ErrClosed is returned by every operation on a project after Close.
	ErrClosed = errors.New("epanet: project is closed")

	// ErrInvalidString is returned when a string argument contains a NUL
	// byte and so cannot be passed to the toolkit.
	ErrInvalidString = errors.New("epanet: string contains NUL byte")

	// ErrUnavailable is returned when the loaded toolkit does not export the
	// function an operation needs (for example a 2.3 call on a 2.2 library).
	ErrUnavailable = errors.New("epanet: function not available in loaded toolkit")

	// ErrLibraryNotLoaded matches every *LoadError.
	ErrLibraryNotLoaded = errors.New("epanet: toolkit library not loaded")
)

// Error is a non-zero status code reported by the toolkit.
// Codes below 100 are warnings: the call completed but the results may be
// suspect. Codes of 100 and above are errors.
type Error struct {
	Op      string
	Code    int
	Message string
}

func (e *Error) Error() string {
	kind := "error"
	if e.Warning() {
		kind = "warning"
	}
	if e.Op == "" {
		return fmt.Sprintf("epanet: %s %d: %s", kind, e.Code, e.Message)
	}
	return fmt.Sprintf("epanet: %s: %s %d: %s", e.Op, kind, e.Code, e.Message)
}

// Warning reports whether the code is a warning rather than an error.
func (e *Error) Warning() bool {
	return e.Code > 0 && e.Code < 100
}

// Is matches another *Error with the same code, so callers can write
// errors.Is(err, &epanet.Error{Code: 203}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// ErrorCode extracts the toolkit status code from err.
func ErrorCode(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// IsWarning reports whether err is a toolkit warning.
func IsWarning(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Warning()
}

// LoadError reports a failure to load the toolkit shared library.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("epanet: load library: %v", e.Err)
	}
	return fmt.Sprintf("epanet: load library %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLibraryNotLoaded
}

// errUnavailableCode is the status reported for a symbol missing from the
// loaded library.
const errUnavailableCode = ffi.CodeUnavailable

// newError converts a non-zero status code into an error.
func newError(eng engine, code int32) error {
	return opError(eng, "", code)
}

func opError(eng engine, op string, code int32) error {
	if code == errUnavailableCode {
		if op == "" {
			return ErrUnavailable
		}
		return fmt.Errorf("epanet: %s: %w", op, ErrUnavailable)
	}
	return &Error{Op: op, Code: int(code), Message: errorMessage(eng, code)}
}

// errorMessage asks the toolkit for the text of code, falling back to the
// table generated from the toolkit's message catalog.
func errorMessage(eng engine, code int32) string {
	if eng != nil {
		if msg, rc := eng.ErrorMessage(code); rc == 0 && msg != "" {
			return msg
		}
	}
	if msg, ok := errorMessages[int(code)]; ok {
		return msg
	}
	return "unknown error"
}
