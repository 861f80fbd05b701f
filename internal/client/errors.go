package client

import "errors"

var (
	// ErrUsage is returned for a missing or malformed command line.
	ErrUsage = errors.New("invalid usage")
	// ErrUnknownCommand is returned for a command the client does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNotLoggedIn is returned by commands that need a stored token.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalidBody is returned when a request body is not valid JSON.
	ErrInvalidBody = errors.New("request body is not valid JSON")
)
