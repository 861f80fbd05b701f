package utils

import "github.com/google/uuid"

// TraceIDHeader is the header carrying the per-request trace identifier
// between the client, the development server and the backend.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a fresh trace identifier. Time-ordered v7 UUIDs are
// preferred so that ids sort by creation time in logs.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
