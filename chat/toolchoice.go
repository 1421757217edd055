package chat

import "encoding/json"

// toolChoiceKind enumerates the tool-choice policies.
type toolChoiceKind int

const (
	toolChoiceNone toolChoiceKind = iota
	toolChoiceAuto
	toolChoiceRequired
	toolChoiceForced
)

// ToolChoice is the policy controlling whether, and which, tool the
// backend may invoke in a round.
type ToolChoice struct {
	kind toolChoiceKind
	tool string
}

var (
	// ToolChoiceNone forbids tool calls. Encoded by omitting the
	// tool_choice field entirely, which older backends require.
	ToolChoiceNone = ToolChoice{kind: toolChoiceNone}
	// ToolChoiceAuto lets the backend decide.
	ToolChoiceAuto = ToolChoice{kind: toolChoiceAuto}
	// ToolChoiceRequired forces the backend to call some tool.
	ToolChoiceRequired = ToolChoice{kind: toolChoiceRequired}
)

// ForceTool forces the backend to call the named tool.
func ForceTool(name string) ToolChoice {
	return ToolChoice{kind: toolChoiceForced, tool: name}
}

// encode renders the wire value for the tool_choice field, or nil when
// the field must be omitted.
func (t ToolChoice) encode() json.RawMessage {
	switch t.kind {
	case toolChoiceAuto:
		return json.RawMessage(`"auto"`)
	case toolChoiceRequired:
		return json.RawMessage(`"required"`)
	case toolChoiceForced:
		raw, _ := json.Marshal(struct {
			Type     string `json:"type"`
			Function struct {
				Name string `json:"name"`
			} `json:"function"`
		}{Type: "function", Function: struct {
			Name string `json:"name"`
		}{Name: t.tool}})
		return raw
	default:
		return nil
	}
}
