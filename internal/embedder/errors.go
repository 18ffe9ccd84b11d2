package embedder

import (
	"errors"
	"fmt"
)

// Kind classifies an embedding failure.
type Kind int

const (
	KindMissingArgument Kind = iota + 1
	KindInvalidPath
	KindReadFailure
	KindWriteFailure
)

func (k Kind) String() string {
	switch k {
	case KindMissingArgument:
		return "missing argument"
	case KindInvalidPath:
		return "invalid path"
	case KindReadFailure:
		return "read failure"
	case KindWriteFailure:
		return "write failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ExitCode is the process exit status reported for k.
func (k Kind) ExitCode() int {
	switch k {
	case KindMissingArgument:
		return 2
	case KindInvalidPath:
		return 3
	case KindReadFailure:
		return 4
	case KindWriteFailure:
		return 5
	default:
		return 1
	}
}

var ErrMissingArgument = errors.New("no input file path provided")

// Error is returned by every failing embedder operation.
type Error struct {
	Kind Kind
	// Path is the input argument for path errors, the file path otherwise.
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingArgument:
		return e.Err.Error()
	case KindInvalidPath:
		return fmt.Sprintf("invalid input file path %q: %v", e.Path, e.Err)
	case KindReadFailure:
		return fmt.Sprintf("error reading file: %v", e.Err)
	case KindWriteFailure:
		return fmt.Sprintf("error writing JS file: %v", e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode maps err to a process exit status: 0 for nil, the kind's code for
// an *Error and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var embedErr *Error
	if errors.As(err, &embedErr) {
		return embedErr.Kind.ExitCode()
	}

	return 1
}
