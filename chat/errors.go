package chat

import "errors"

// Sentinel errors returned by the client and conversation engine.
//
// All of these abort the current round and surface to the caller
// immediately; none are retried internally. History mutations applied
// before the failing step are not rolled back.
var (
	// ErrModelConfigNotSet is returned when a round is started with no
	// per-call override and no process-wide default configuration.
	ErrModelConfigNotSet = errors.New("model config not set")

	// ErrInvalidEndpoint is returned when the configured endpoint does not
	// begin with http:// or https://. Checked before any network attempt.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrNetwork wraps a transport failure. The underlying cause is kept
	// in the chain and reachable via errors.Unwrap.
	ErrNetwork = errors.New("network error")

	// ErrInvalidResponse is returned when the response body is absent or
	// malformed, or the choices array is empty.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrToolNotFound is returned when the backend requests a tool that is
	// unknown to the registry or currently disabled.
	ErrToolNotFound = errors.New("tool not found")

	// ErrUnknown is returned when the response message carries neither
	// content nor tool calls.
	ErrUnknown = errors.New("unknown error")
)
