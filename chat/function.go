package chat

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// FunctionCall is one backend-requested tool invocation, carrying the
// correlation id a ToolMessage must echo back.
type FunctionCall struct {
	// ID uniquely identifies this invocation within the conversation.
	ID string
	// Type is fixed to "function"; no other call kinds exist today.
	Type string
	// Function holds the invocation target and arguments.
	Function FunctionCallBody
}

// FunctionCallBody is the name/arguments pair inside a function call.
type FunctionCallBody struct {
	Name string
	// Arguments is the parsed JSON value. On the wire backends emit it
	// either as literal JSON or as a JSON-encoded string; it is always
	// normalized to the parsed value here, and always re-encoded as a
	// JSON-encoded string. That asymmetry is deliberate: backends vary in
	// which shape they emit but all accept the string form.
	Arguments any
}

// ArgumentsJSON renders the arguments as compact JSON for display and
// re-encoding. Falls back to "null" when the value cannot marshal.
func (b FunctionCallBody) ArgumentsJSON() string {
	raw, err := json.Marshal(b.Arguments)
	if err != nil {
		return "null"
	}
	return string(raw)
}

// MarshalJSON encodes the call with arguments as a JSON-encoded string.
func (f FunctionCall) MarshalJSON() ([]byte, error) {
	callType := f.Type
	if callType == "" {
		callType = "function"
	}
	return json.Marshal(struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Function struct {
			Name      string `json:"name"`
			Arguments string `json:"arguments"`
		} `json:"function"`
	}{
		ID:   f.ID,
		Type: callType,
		Function: struct {
			Name      string `json:"name"`
			Arguments string `json:"arguments"`
		}{Name: f.Function.Name, Arguments: f.Function.ArgumentsJSON()},
	})
}

// UnmarshalJSON decodes the call, normalizing arguments via
// decodeArguments.
func (f *FunctionCall) UnmarshalJSON(data []byte) error {
	var envelope struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Function struct {
			Name      string          `json:"name"`
			Arguments json.RawMessage `json:"arguments"`
		} `json:"function"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("malformed tool call: %w", err)
	}
	f.ID = envelope.ID
	f.Type = envelope.Type
	if f.Type == "" {
		f.Type = "function"
	}
	f.Function.Name = envelope.Function.Name
	f.Function.Arguments = decodeArguments(envelope.Function.Arguments)
	return nil
}

// decodeArguments normalizes the wire arguments field. It is an explicit
// two-stage fallback rather than one permissive parser so each stage's
// failure mode stays auditable:
//
//  1. literal JSON object/array/scalar parses as-is;
//  2. a JSON string is unescaped and re-parsed as JSON;
//  3. anything else degrades to the raw text as a string value.
//
// Decoding never fails on malformed arguments.
func decodeArguments(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	parsed := gjson.ParseBytes(raw)
	if parsed.Type == gjson.String {
		inner := parsed.String()
		var value any
		if err := json.Unmarshal([]byte(inner), &value); err == nil {
			return value
		}
		return inner
	}
	var value any
	if err := json.Unmarshal(raw, &value); err == nil {
		return value
	}
	return string(raw)
}

// ToolDefinition is a registry-neutral description of one capability,
// snapshotted at request-assembly time.
type ToolDefinition struct {
	Name        string
	Description string
	// Parameters is a JSON-schema value describing the tool's input.
	Parameters any
}

// ToolDef is the wire form of one tool definition.
type ToolDef struct {
	Type     string      `json:"type"`
	Function FunctionDef `json:"function"`
}

// FunctionDef is the function body of a wire tool definition.
type FunctionDef struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"`
	Strict      bool   `json:"strict"`
}
