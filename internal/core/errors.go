// Error taxonomy shared by the history engine and its collaborators
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMoreHistory is returned by Undo/Redo at the oldest/newest entry.
	ErrNoMoreHistory = errors.New("no more history")

	// ErrEmptyHistory is returned when no image has been loaded yet.
	ErrEmptyHistory = errors.New("no image loaded")
)

// DecodeError reports an input that could not be interpreted as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode image: %v", e.Err)
	}
	return fmt.Sprintf("decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransformError reports an invalid operation, invalid parameters, or an
// operation that is inapplicable to the current image.
type TransformError struct {
	Op     string
	Reason string
}

func (e *TransformError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("transform: %s", e.Reason)
	}
	return fmt.Sprintf("transform %s: %s", e.Op, e.Reason)
}
