package generator

import "errors"

var (
	// ErrTargetConflict is returned when a file to be generated already exists.
	ErrTargetConflict = errors.New("target file already exists")

	// ErrNoActiveContext is returned when there is no folder or buffer to act on.
	ErrNoActiveContext = errors.New("no active context")
)
