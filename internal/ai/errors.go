package ai

import "errors"

// Failure kinds surfaced by components that talk to the generation service.
// Callers discriminate with errors.Is; user-facing surfaces collapse them into
// a single "failed" message and keep the cause in logs.
var (
	// ErrUnavailable marks transport-level failures: the service could not be
	// reached or did not answer in time.
	ErrUnavailable = errors.New("generation service unavailable")

	// ErrMalformedResponse marks responses that are not parseable JSON even
	// after markdown fences are stripped.
	ErrMalformedResponse = errors.New("malformed generation response")

	// ErrInvalidExtraction marks responses that parse but are missing required
	// fields or carry values of the wrong shape.
	ErrInvalidExtraction = errors.New("invalid extraction payload")
)
