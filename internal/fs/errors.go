package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
)

// ErrorKind classifies filesystem failures surfaced to the user.
type ErrorKind int

const (
	IOFailure ErrorKind = iota
	PermissionDenied
	NotFound
	AlreadyExists
)

func (k ErrorKind) String() string {
	switch k {
	case PermissionDenied:
		return "permission denied"
	case NotFound:
		return "not found"
	case AlreadyExists:
		return "already exists"
	default:
		return "i/o failure"
	}
}

// ErrInvalidName is returned for names that would escape the current directory.
var ErrInvalidName = errors.New("invalid name")

// OpError records a failed filesystem operation and its classification.
type OpError struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// KindOf classifies err. Errors that are not an *OpError are mapped from the
// io/fs sentinels; anything else is an I/O failure.
func KindOf(err error) ErrorKind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return classify(err)
}

func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, iofs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, iofs.ErrNotExist):
		return NotFound
	case errors.Is(err, iofs.ErrExist):
		return AlreadyExists
	default:
		return IOFailure
	}
}

func wrapError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Path: path, Kind: classify(err), Err: err}
}
