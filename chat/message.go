// Package chat implements the conversation message model, the wire codec
// for the chat-completions JSON protocol, and the tool-augmented
// conversation engine.
package chat

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// namePattern constrains the optional participant name carried by user,
// assistant, system, and developer messages.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateName checks an optional participant name. The empty string is
// accepted and means "no name".
func ValidateName(name string) error {
	if name == "" {
		return nil
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match ^[a-zA-Z0-9_-]+$", name)
	}
	return nil
}

// Message is one turn of conversation. It is a closed set: exactly the
// five role types below implement it, so encode and decode sites can
// switch exhaustively and adding a role is visible everywhere.
type Message interface {
	// Role returns the wire role tag ("user", "tool", ...).
	Role() string

	json.Marshaler

	isMessage()
}

// UserMessage is a turn authored by the end user.
type UserMessage struct {
	// Name optionally identifies the user; must match ^[a-zA-Z0-9_-]+$.
	Name string
	// Content is the ordered content sequence for this turn.
	Content []MessageContext
}

// ToolMessage carries the result of one tool invocation back to the
// backend. ToolCallID must reference an id previously emitted inside an
// assistant turn's tool calls; violating that ordering is a backend-side
// error, not a local one.
type ToolMessage struct {
	ToolCallID string
	Content    []MessageContext
}

// AssistantMessage is a turn authored by the model, possibly requesting
// tool invocations.
type AssistantMessage struct {
	Name      string
	Content   []MessageContext
	ToolCalls []FunctionCall
}

// SystemMessage is a system prompt.
type SystemMessage struct {
	Name    string
	Content string
}

// DeveloperMessage is a developer prompt. Backends that do not support
// the developer role treat it as a system message.
type DeveloperMessage struct {
	Name    string
	Content string
}

func (*UserMessage) Role() string      { return "user" }
func (*ToolMessage) Role() string      { return "tool" }
func (*AssistantMessage) Role() string { return "assistant" }
func (*SystemMessage) Role() string    { return "system" }
func (*DeveloperMessage) Role() string { return "developer" }

func (*UserMessage) isMessage()      {}
func (*ToolMessage) isMessage()      {}
func (*AssistantMessage) isMessage() {}
func (*SystemMessage) isMessage()    {}
func (*DeveloperMessage) isMessage() {}

// NewUserMessage builds a user turn, validating the optional name.
func NewUserMessage(name string, content ...MessageContext) (*UserMessage, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &UserMessage{Name: name, Content: content}, nil
}

// NewSystemMessage builds a system prompt, validating the optional name.
func NewSystemMessage(name, content string) (*SystemMessage, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &SystemMessage{Name: name, Content: content}, nil
}

// NewDeveloperMessage builds a developer prompt, validating the optional name.
func NewDeveloperMessage(name, content string) (*DeveloperMessage, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &DeveloperMessage{Name: name, Content: content}, nil
}

// Text is shorthand for a single-text content sequence.
func Text(s string) []MessageContext {
	return []MessageContext{TextContent{Text: s}}
}

// MessageContext is one content item within a message: text or an image
// reference. Like Message it is a closed set.
type MessageContext interface {
	isMessageContext()
}

// TextContent is a plain text content item.
type TextContent struct {
	Text string
}

// ImageDetail selects the resolution the backend should process an image
// at.
type ImageDetail string

const (
	DetailLow    ImageDetail = "low"
	DetailMedium ImageDetail = "medium"
	DetailAuto   ImageDetail = "auto"
)

// ImageContent references an image by HTTP(S) URL or base64 data URI.
// The client does not validate or fetch the URL.
type ImageContent struct {
	URL string
	// Detail is optional; empty means backend default.
	Detail ImageDetail
}

func (TextContent) isMessageContext()  {}
func (ImageContent) isMessageContext() {}

// wireContent is the tagged object form of a content item.
type wireContent struct {
	Type     string     `json:"type"`
	Text     string     `json:"text,omitempty"`
	ImageURL *wireImage `json:"image_url,omitempty"`
}

type wireImage struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

// MarshalJSON encodes a text item as {"type":"text","text":...}.
func (c TextContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireContent{Type: "text", Text: c.Text})
}

// MarshalJSON encodes an image item as {"type":"image_url","image_url":{...}}.
func (c ImageContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireContent{
		Type:     "image_url",
		ImageURL: &wireImage{URL: c.URL, Detail: string(c.Detail)},
	})
}

// marshalContentField encodes the "content" value of a message. A
// sequence of exactly one text item collapses to a bare string; anything
// else is the full ordered array of tagged items.
func marshalContentField(content []MessageContext) (json.RawMessage, error) {
	if len(content) == 1 {
		if text, ok := content[0].(TextContent); ok {
			return json.Marshal(text.Text)
		}
	}
	items := make([]json.RawMessage, 0, len(content))
	for _, c := range content {
		var (
			raw []byte
			err error
		)
		switch v := c.(type) {
		case TextContent:
			raw, err = v.MarshalJSON()
		case ImageContent:
			raw, err = v.MarshalJSON()
		default:
			err = fmt.Errorf("unsupported content item %T", c)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, raw)
	}
	return json.Marshal(items)
}

// unmarshalContentField decodes a "content" value that may be a bare
// string, or an array of tagged content objects.
func unmarshalContentField(raw json.RawMessage) ([]MessageContext, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []MessageContext{TextContent{Text: s}}, nil
	}
	var items []wireContent
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("malformed content: %w", err)
	}
	out := make([]MessageContext, 0, len(items))
	for _, item := range items {
		switch item.Type {
		case "text":
			out = append(out, TextContent{Text: item.Text})
		case "image_url":
			if item.ImageURL == nil {
				return nil, fmt.Errorf("image_url content item missing image_url object")
			}
			out = append(out, ImageContent{
				URL:    item.ImageURL.URL,
				Detail: ImageDetail(item.ImageURL.Detail),
			})
		default:
			return nil, fmt.Errorf("unsupported content type %q", item.Type)
		}
	}
	return out, nil
}

// MarshalJSON encodes the user turn with its role tag, optional name,
// and collapsed content.
func (m *UserMessage) MarshalJSON() ([]byte, error) {
	content, err := marshalContentField(m.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Role    string          `json:"role"`
		Name    string          `json:"name,omitempty"`
		Content json.RawMessage `json:"content"`
	}{Role: m.Role(), Name: m.Name, Content: content})
}

// MarshalJSON encodes the tool result with its correlation id.
func (m *ToolMessage) MarshalJSON() ([]byte, error) {
	content, err := marshalContentField(m.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Role       string          `json:"role"`
		ToolCallID string          `json:"tool_call_id"`
		Content    json.RawMessage `json:"content"`
	}{Role: m.Role(), ToolCallID: m.ToolCallID, Content: content})
}

// MarshalJSON encodes the assistant turn; tool_calls is present only
// when the turn carries them.
func (m *AssistantMessage) MarshalJSON() ([]byte, error) {
	content, err := marshalContentField(m.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Role      string          `json:"role"`
		Name      string          `json:"name,omitempty"`
		Content   json.RawMessage `json:"content"`
		ToolCalls []FunctionCall  `json:"tool_calls,omitempty"`
	}{Role: m.Role(), Name: m.Name, Content: content, ToolCalls: m.ToolCalls})
}

// MarshalJSON encodes the system prompt; content is always a bare string.
func (m *SystemMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Role    string `json:"role"`
		Name    string `json:"name,omitempty"`
		Content string `json:"content"`
	}{Role: m.Role(), Name: m.Name, Content: m.Content})
}

// MarshalJSON encodes the developer prompt; content is always a bare string.
func (m *DeveloperMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Role    string `json:"role"`
		Name    string `json:"name,omitempty"`
		Content string `json:"content"`
	}{Role: m.Role(), Name: m.Name, Content: m.Content})
}

// UnmarshalMessage decodes one role-discriminated wire message into the
// matching concrete type.
func UnmarshalMessage(data []byte) (Message, error) {
	var envelope struct {
		Role       string          `json:"role"`
		Name       string          `json:"name"`
		Content    json.RawMessage `json:"content"`
		ToolCallID string          `json:"tool_call_id"`
		ToolCalls  []FunctionCall  `json:"tool_calls"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}
	switch envelope.Role {
	case "user":
		content, err := unmarshalContentField(envelope.Content)
		if err != nil {
			return nil, err
		}
		return &UserMessage{Name: envelope.Name, Content: content}, nil
	case "tool":
		if envelope.ToolCallID == "" {
			return nil, fmt.Errorf("tool message missing tool_call_id")
		}
		content, err := unmarshalContentField(envelope.Content)
		if err != nil {
			return nil, err
		}
		return &ToolMessage{ToolCallID: envelope.ToolCallID, Content: content}, nil
	case "assistant":
		content, err := unmarshalContentField(envelope.Content)
		if err != nil {
			return nil, err
		}
		return &AssistantMessage{
			Name:      envelope.Name,
			Content:   content,
			ToolCalls: envelope.ToolCalls,
		}, nil
	case "system", "developer":
		var s string
		if err := json.Unmarshal(envelope.Content, &s); err != nil {
			return nil, fmt.Errorf("%s message content must be a string", envelope.Role)
		}
		if envelope.Role == "system" {
			return &SystemMessage{Name: envelope.Name, Content: s}, nil
		}
		return &DeveloperMessage{Name: envelope.Name, Content: s}, nil
	default:
		return nil, fmt.Errorf("unsupported role %q", envelope.Role)
	}
}

// renderContent flattens a content sequence for transcript display.
func renderContent(content []MessageContext) string {
	var b strings.Builder
	for i, c := range content {
		if i > 0 {
			b.WriteString("\n")
		}
		switch v := c.(type) {
		case TextContent:
			b.WriteString(v.Text)
		case ImageContent:
			fmt.Fprintf(&b, "[image: %s]", v.URL)
		}
	}
	return b.String()
}

// String renders the turn for transcripts and logs.
func (m *UserMessage) String() string {
	name := m.Name
	if name == "" {
		name = "user"
	}
	return fmt.Sprintf("%s: %s", name, renderContent(m.Content))
}

func (m *ToolMessage) String() string {
	return fmt.Sprintf("tool[%s]: %s", m.ToolCallID, renderContent(m.Content))
}

func (m *AssistantMessage) String() string {
	name := m.Name
	if name == "" {
		name = "assistant"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", name, renderContent(m.Content))
	for _, call := range m.ToolCalls {
		fmt.Fprintf(&b, "\n  -> %s(%s)", call.Function.Name, call.Function.ArgumentsJSON())
	}
	return b.String()
}

func (m *SystemMessage) String() string {
	return fmt.Sprintf("system: %s", m.Content)
}

func (m *DeveloperMessage) String() string {
	return fmt.Sprintf("developer: %s", m.Content)
}
