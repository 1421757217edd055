package chat

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// apiRequest is the outbound wire shape for one chat-completions call.
// Optional fields are omitted when unset; tools is omitted when the
// registry contributes zero enabled definitions, and tool_choice is
// omitted entirely for mode none (legacy compatibility).
type apiRequest struct {
	Model               string          `json:"model"`
	Messages            []Message       `json:"messages"`
	Tools               []ToolDef       `json:"tools,omitempty"`
	ToolChoice          json.RawMessage `json:"tool_choice,omitempty"`
	Temperature         *float64        `json:"temperature,omitempty"`
	TopP                *float64        `json:"top_p,omitempty"`
	MaxCompletionTokens *uint64         `json:"max_completion_tokens,omitempty"`
	ParallelToolCalls   *bool           `json:"parallel_tool_calls,omitempty"`
	ReasoningEffort     string          `json:"reasoning_effort,omitempty"`
	PresencePenalty     *float64        `json:"presence_penalty,omitempty"`
}

// APIResponse is the decoded response body.
type APIResponse struct {
	Choices []Choice  `json:"choices"`
	Model   string    `json:"model,omitempty"`
	Object  string    `json:"object,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Usage   *APIUsage `json:"usage,omitempty"`
}

// Choice is one candidate completion. The engine consumes only the
// first; additional choices are discarded.
type Choice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

// ResponseMessage is the assistant message inside one choice. Content is
// a pointer so "absent" and "empty string" stay distinguishable.
type ResponseMessage struct {
	Role        string          `json:"role"`
	Content     *string         `json:"content,omitempty"`
	ToolCalls   []FunctionCall  `json:"tool_calls,omitempty"`
	Refusal     *string         `json:"refusal,omitempty"`
	Annotations json.RawMessage `json:"annotations,omitempty"`
}

// APIError is the backend's error object.
type APIError struct {
	Message string          `json:"message"`
	Type    string          `json:"type"`
	Code    json.RawMessage `json:"code,omitempty"`
}

// APIUsage reports token accounting for one call.
type APIUsage struct {
	PromptTokens     *uint64 `json:"prompt_tokens,omitempty"`
	CompletionTokens *uint64 `json:"completion_tokens,omitempty"`
	TotalTokens      *uint64 `json:"total_tokens,omitempty"`
}

// APIResponseHeaders carries rate-limit and retry metadata parsed from
// the response headers. Informational only: the client never retries
// internally, callers own backoff policy.
type APIResponseHeaders struct {
	// RetryAfter is the Retry-After value in seconds.
	RetryAfter *uint64
	// Reset is the X-RateLimit-Reset value.
	Reset *uint64
	// RateLimit is the X-RateLimit-Remaining value.
	RateLimit *uint64
	// Limit is the X-RateLimit-Limit value.
	Limit *uint64
	// Extra passes through every response header verbatim.
	Extra map[string]string
}

// APIResult bundles the decoded response with its headers. Generate
// returns it whether the round ended in plain content or tool dispatch.
type APIResult struct {
	Response APIResponse
	Headers  APIResponseHeaders
}

// parseResponseHeaders extracts the known rate-limit headers and keeps
// everything else in the pass-through map.
func parseResponseHeaders(h http.Header) APIResponseHeaders {
	headers := APIResponseHeaders{Extra: make(map[string]string, len(h))}
	headers.RetryAfter = headerUint(h, "Retry-After")
	headers.Reset = headerUint(h, "X-RateLimit-Reset")
	headers.RateLimit = headerUint(h, "X-RateLimit-Remaining")
	headers.Limit = headerUint(h, "X-RateLimit-Limit")
	for key := range h {
		headers.Extra[key] = h.Get(key)
	}
	return headers
}

func headerUint(h http.Header, key string) *uint64 {
	value := h.Get(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
