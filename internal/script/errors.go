package script

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned when a script runs longer than its time limit.
var ErrTimeout = errors.New("script timed out")

// Error reports a script that failed to load or run.
type Error struct {
	// Path is the script file.
	Path string
	// Err is the underlying Lua or command table error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
