package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoActiveDocument indicates no document is currently active.
	ErrNoActiveDocument = errors.New("no active document")

	// ErrNoFilePath indicates a scratch document has nowhere to be saved.
	ErrNoFilePath = errors.New("document has no file path")

	// ErrUnsavedChanges indicates there are unsaved changes.
	ErrUnsavedChanges = errors.New("unsaved changes")
)

// OperationError records which operation failed on which target.
type OperationError struct {
	Op     string // "open", "save", "reload"
	Target string // File path
	Err    error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
