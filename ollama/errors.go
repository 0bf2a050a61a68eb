package ollama

import "errors"

var (
	// ErrBaseURLRequired is returned by New when no base URL is given.
	ErrBaseURLRequired = errors.New("base url is required")
	// ErrUnexpectedStatus is returned for a non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrPullFailed is returned when the server reports an error while pulling.
	ErrPullFailed = errors.New("pull failed")
)
