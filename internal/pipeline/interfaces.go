package pipeline

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/pipeline_mock.go -package=mock

// SessionStore owns the authenticated session. The pipeline only reads the
// token and asks for a logout when the backend rejects it.
type SessionStore interface {
	// Token returns the current bearer credential, or an empty string when
	// nobody is logged in. It is called once per outgoing request.
	Token() string

	// Logout clears the session, including any persisted credential, and
	// returns once that is done.
	Logout(ctx context.Context) error
}

// Navigator moves the application between screens.
type Navigator interface {
	// CurrentPath returns the location currently shown.
	CurrentPath() string

	// Navigate switches to path and returns once the move is complete.
	Navigate(ctx context.Context, path string) error
}

// Notifier shows error messages to the user. Error must not block.
type Notifier interface {
	Error(message string)
}
