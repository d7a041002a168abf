package domain

import "errors"

// ErrUnrecognizedCommand is returned when a task string matches none of the
// grammar rules. The wrapping message carries the raw input for diagnostics.
var ErrUnrecognizedCommand = errors.New("unrecognized command")

// ErrOutOfBounds is returned when coordinates fall outside the detected
// screen bounds.
var ErrOutOfBounds = errors.New("out of bounds")

// ErrNoDisplay is returned when no display surface is available for capture
// or input injection.
var ErrNoDisplay = errors.New("no display available")

// ErrAppNotFound is returned when an application name cannot be resolved or
// its launch command fails to spawn.
var ErrAppNotFound = errors.New("application not found")
