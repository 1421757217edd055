package chat

import (
	"context"
	"net/http"
)

// Transport performs one request/response exchange against the backend.
// Implementations own connection handling, TLS, and any caller-side
// retry policy; the conversation engine issues exactly one Send per
// round and treats a failure as terminal for that round.
type Transport interface {
	// Send posts the JSON payload to url with the given headers and
	// returns the raw response. The body must be returned regardless of
	// HTTP status; protocol-level errors are decoded from it upstream.
	Send(ctx context.Context, url string, headers map[string]string, body []byte) (*RawResponse, error)
}

// RawResponse is a status-independent view of one HTTP exchange.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ToolRegistry is the engine's view of the capability registry.
// Registration, enabling, and disabling are managed outside the engine;
// the engine only looks up, snapshots definitions, and invokes.
type ToolRegistry interface {
	// Lookup reports whether name is registered and whether it is
	// currently enabled.
	Lookup(name string) (enabled bool, ok bool)

	// EnabledDefinitions returns the definitions of all enabled tools in
	// a stable order. The engine snapshots this at request-assembly
	// time; later enable/disable flips do not affect an in-flight round.
	EnabledDefinitions() []ToolDefinition

	// Invoke runs the named tool synchronously. The returned error is a
	// human-readable invocation failure; it never aborts the round and
	// is folded into history as tool-result content.
	Invoke(name string, args any) (string, error)
}
