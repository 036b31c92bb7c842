package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedCommand is returned when a command is neither a control
	// token nor a known body part.
	ErrUnrecognizedCommand = errors.New("unrecognized command")
	// ErrInvalidCatalog is returned when catalog data fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrSessionClosed is returned for submissions after the session stopped.
	ErrSessionClosed = errors.New("session closed")
)

// UnrecognizedCommandError carries the command that could not be resolved.
type UnrecognizedCommandError struct {
	Command string
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("could not locate part: %s", e.Command)
}

// Unwrap lets errors.Is match ErrUnrecognizedCommand.
func (e *UnrecognizedCommandError) Unwrap() error {
	return ErrUnrecognizedCommand
}
