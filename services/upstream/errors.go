package upstream

import (
	"errors"
	"fmt"
)

// ErrEventNotFound is terminal: the event id does not exist upstream and
// the fetch is never retried.
var ErrEventNotFound = errors.New("event not found")

// ErrEventFetchFailed reports exhausted retries against the events endpoint.
var ErrEventFetchFailed = errors.New("failed to fetch event after multiple attempts")

// SubmissionError carries the upstream rejection of a registration payload.
// Message is the server-supplied text when one was given, surfaced verbatim.
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("registration failed (%d): %s", e.StatusCode, e.Message)
}
