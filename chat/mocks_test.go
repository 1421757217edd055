package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// fakeTransport records each exchange and replays scripted responses.
type fakeTransport struct {
	requests []capturedRequest
	queue    []*RawResponse
	err      error
}

type capturedRequest struct {
	url     string
	headers map[string]string
	body    []byte
}

func (f *fakeTransport) Send(_ context.Context, url string, headers map[string]string, body []byte) (*RawResponse, error) {
	f.requests = append(f.requests, capturedRequest{url: url, headers: headers, body: body})
	if f.err != nil {
		return nil, f.err
	}
	if len(f.queue) == 0 {
		return &RawResponse{StatusCode: 200, Header: http.Header{}, Body: nil}, nil
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next, nil
}

func (f *fakeTransport) enqueueBody(body string) {
	f.queue = append(f.queue, &RawResponse{
		StatusCode: 200,
		Header:     http.Header{},
		Body:       []byte(body),
	})
}

// lastRequestJSON decodes the most recent request payload for assertions.
func (f *fakeTransport) lastRequestJSON() (map[string]any, error) {
	if len(f.requests) == 0 {
		return nil, fmt.Errorf("no requests captured")
	}
	var decoded map[string]any
	if err := json.Unmarshal(f.requests[len(f.requests)-1].body, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

// fakeRegistry is a scripted ToolRegistry.
type fakeRegistry struct {
	defs     []ToolDefinition
	disabled map[string]bool
	results  map[string]string
	failures map[string]string
	invoked  []string
}

func newFakeRegistry(defs ...ToolDefinition) *fakeRegistry {
	return &fakeRegistry{
		defs:     defs,
		disabled: make(map[string]bool),
		results:  make(map[string]string),
		failures: make(map[string]string),
	}
}

func (f *fakeRegistry) Lookup(name string) (bool, bool) {
	for _, def := range f.defs {
		if def.Name == name {
			return !f.disabled[name], true
		}
	}
	return false, false
}

func (f *fakeRegistry) EnabledDefinitions() []ToolDefinition {
	out := make([]ToolDefinition, 0, len(f.defs))
	for _, def := range f.defs {
		if !f.disabled[def.Name] {
			out = append(out, def)
		}
	}
	return out
}

func (f *fakeRegistry) Invoke(name string, _ any) (string, error) {
	f.invoked = append(f.invoked, name)
	if msg, ok := f.failures[name]; ok {
		return "", fmt.Errorf("%s", msg)
	}
	return f.results[name], nil
}

// responseBody builds a single-choice response body for scripting.
func responseBody(content *string, toolCalls ...string) string {
	message := map[string]any{"role": "assistant"}
	if content != nil {
		message["content"] = *content
	}
	if len(toolCalls) > 0 {
		calls := make([]map[string]any, 0, len(toolCalls))
		for i, name := range toolCalls {
			calls = append(calls, map[string]any{
				"id":   fmt.Sprintf("call_%d", i+1),
				"type": "function",
				"function": map[string]any{
					"name":      name,
					"arguments": `{"text":"hi"}`,
				},
			})
		}
		message["tool_calls"] = calls
	}
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{
			"index":         0,
			"message":       message,
			"finish_reason": "stop",
		}},
		"model":  "gpt-4o-mini",
		"object": "chat.completion",
	})
	return string(body)
}

func strPtr(s string) *string { return &s }
