package llm

import "errors"

// Error taxonomy for the completion backend. Callers match with errors.Is;
// the API layer maps each kind to its transport status.
var (
	// ErrBackendTimeout: the backend exceeded its time budget after
	// exhausting retries.
	ErrBackendTimeout = errors.New("completion backend timed out")

	// ErrBackendUnreachable: network/transport failure, including
	// unexpected HTTP error statuses.
	ErrBackendUnreachable = errors.New("completion backend unreachable")

	// ErrBackendUnavailable: backend reachable but refused to serve
	// (model missing, server error).
	ErrBackendUnavailable = errors.New("completion backend unavailable")

	// ErrResponseValidation: backend replied but the payload could not be
	// parsed into valid advice.
	ErrResponseValidation = errors.New("completion response validation failed")
)

// transientError marks failures that the retry policy may attempt again:
// network timeouts and unreachable transports. HTTP application errors are
// never marked transient.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }

func (e *transientError) Unwrap() error { return e.err }

func markTransient(err error) error { return &transientError{err: err} }

func isTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}
