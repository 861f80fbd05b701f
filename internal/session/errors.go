package session

import "errors"

var (
	// ErrNoSession is returned by [FileStore.Claims] when nobody is logged in.
	ErrNoSession = errors.New("no active session")

	// ErrEmptyToken is returned by [FileStore.SetToken] for a blank token.
	ErrEmptyToken = errors.New("token is empty")
)
