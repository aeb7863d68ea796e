package features

import (
	"errors"
	"fmt"
)

// Kind classifies a LoadAndExtract failure.
type Kind string

const (
	// KindIO covers a config file that is missing or unreadable.
	KindIO Kind = "io"
	// KindInvalidInput covers a file name without a supported extension.
	KindInvalidInput Kind = "invalid_input"
	// KindParse covers content that does not match the expected schema.
	KindParse Kind = "parse"
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrIO           = errors.New("config file unreadable")
	ErrInvalidInput = errors.New("invalid config file name")
	ErrParse        = errors.New("config file malformed")
)

// Error is returned by LoadAndExtract.
type Error struct {
	Kind    Kind
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %q: %s: %v", e.Kind, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrParse) and friends match by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	case ErrParse:
		return e.Kind == KindParse
	default:
		return false
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}

func newError(kind Kind, path, message string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Message: message, Cause: cause}
}
