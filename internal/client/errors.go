package client

import "errors"

var (
	// ErrNoCommand is returned when Run is called without a subcommand.
	ErrNoCommand = errors.New("no command given")

	// ErrUnknownCommand is returned for a subcommand the client does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingTaskID is returned by commands that act on a single task
	// when no id was given.
	ErrMissingTaskID = errors.New("task id is required")

	// ErrNothingToUpdate is returned by edit when no field flag was set.
	ErrNothingToUpdate = errors.New("nothing to update: set at least one of -title, -description, -status, -priority")
)
