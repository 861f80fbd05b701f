package devserver

import "errors"

var (
	// ErrInvalidProxyTarget is returned for a proxy target that is not an
	// absolute URL.
	ErrInvalidProxyTarget = errors.New("invalid proxy target")
)
