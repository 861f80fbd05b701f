package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrMissingDependency is returned by [New] when a collaborator is nil.
	ErrMissingDependency = errors.New("pipeline dependency is missing")
	// ErrInvalidBaseURL is returned by [New] for an empty or relative base URL.
	ErrInvalidBaseURL = errors.New("invalid base url")
	// ErrSessionLogout marks a failed logout after a 401 response. It is
	// joined onto the original transport error.
	ErrSessionLogout = errors.New("session logout failed")
	// ErrNavigation marks a failed redirect to the login screen after a 401
	// response. It is joined onto the original transport error.
	ErrNavigation = errors.New("navigation to login failed")
)

// Error is a business failure: the backend answered at the transport level
// but its envelope code was not 200. Only the user-facing message survives;
// callers cannot tell business failures apart other than by text.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusError is the transport error for a response whose HTTP status is
// outside the 2xx range.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

func isUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 401
}

// isTimeout reports whether err is the transport's timeout signal: either a
// context deadline or a net.Error flagged as a timeout (the http.Client
// timeout surfaces as a *url.Error of that kind).
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
