package chat

import "context"

// Conversation owns one ordered message history and drives the per-round
// orchestration state machine. Create it with Client.NewConversation.
//
// A conversation is exclusively owned: Append, Clear, and Generate must
// not be called concurrently from multiple goroutines. Callers that need
// shared access serialize externally, one round in flight at a time.
type Conversation struct {
	client *Client
	prompt []Message
}

// Append extends the history. Purely structural: no semantic validation
// beyond what message construction already enforced.
func (v *Conversation) Append(messages ...Message) {
	v.prompt = append(v.prompt, messages...)
}

// Clear empties the history.
func (v *Conversation) Clear() {
	v.prompt = v.prompt[:0]
}

// Last returns the most recent message, if any.
func (v *Conversation) Last() (Message, bool) {
	if len(v.prompt) == 0 {
		return nil, false
	}
	return v.prompt[len(v.prompt)-1], true
}

// History returns the live history slice. Callers needing atomicity
// around a Generate call should copy it first: mid-round failures leave
// the prefix of effects already applied.
func (v *Conversation) History() []Message {
	return v.prompt
}

// Generate runs exactly one orchestration round: resolve configuration,
// assemble and send the request, decode the response, and fold the first
// choice back into history, dispatching any tool calls in the order the
// backend returned them.
//
// History mutations already applied when a step fails are not rolled
// back, so a subsequent round can see what happened.
func (v *Conversation) Generate(ctx context.Context, choice ToolChoice, override *ModelConfig) (*APIResult, error) {
	cfg, err := v.client.resolveConfig(override)
	if err != nil {
		return nil, err
	}

	result, err := v.client.callAPI(ctx, v.prompt, choice, cfg)
	if err != nil {
		return nil, err
	}

	if len(result.Response.Choices) == 0 {
		return nil, ErrInvalidResponse
	}
	// First choice only. Some backends return multiple candidate
	// continuations; the rest are discarded.
	message := result.Response.Choices[0].Message

	switch {
	case len(message.ToolCalls) > 0:
		if err := v.dispatchToolCalls(cfg, message); err != nil {
			return nil, err
		}
	case message.Content != nil:
		v.Append(&AssistantMessage{
			Name:    cfg.ModelName,
			Content: Text(*message.Content),
		})
	default:
		return nil, ErrUnknown
	}

	return result, nil
}

// dispatchToolCalls appends the assistant turn carrying the calls, then
// executes each call strictly in backend-return order. A failed lookup
// aborts the round with ErrToolNotFound, leaving the assistant turn and
// any prior tool results in place; a failed invocation is folded into
// history as "Error: <message>" content and the round continues.
func (v *Conversation) dispatchToolCalls(cfg ModelConfig, message ResponseMessage) error {
	content := ""
	if message.Content != nil {
		content = *message.Content
	}
	v.Append(&AssistantMessage{
		Name:      cfg.ModelName,
		Content:   Text(content),
		ToolCalls: message.ToolCalls,
	})

	for _, call := range message.ToolCalls {
		registry := v.client.registry
		if registry == nil {
			return ErrToolNotFound
		}
		enabled, ok := registry.Lookup(call.Function.Name)
		if !ok || !enabled {
			return ErrToolNotFound
		}
		output, err := registry.Invoke(call.Function.Name, call.Function.Arguments)
		if err != nil {
			output = "Error: " + err.Error()
		}
		v.Append(&ToolMessage{
			ToolCallID: call.ID,
			Content:    Text(output),
		})
	}
	return nil
}

// GenerateText runs a round with tools forbidden (mode none).
func (v *Conversation) GenerateText(ctx context.Context, override *ModelConfig) (*APIResult, error) {
	return v.Generate(ctx, ToolChoiceNone, override)
}

// GenerateWithTools runs a round letting the backend decide whether to
// call tools (mode auto).
func (v *Conversation) GenerateWithTools(ctx context.Context, override *ModelConfig) (*APIResult, error) {
	return v.Generate(ctx, ToolChoiceAuto, override)
}

// GenerateRequireTool runs a round requiring the backend to call some
// tool (mode required).
func (v *Conversation) GenerateRequireTool(ctx context.Context, override *ModelConfig) (*APIResult, error) {
	return v.Generate(ctx, ToolChoiceRequired, override)
}

// GenerateForceTool runs a round forcing the named tool. The full
// definitions list is still sent on the wire alongside the forced
// choice.
func (v *Conversation) GenerateForceTool(ctx context.Context, toolName string, override *ModelConfig) (*APIResult, error) {
	return v.Generate(ctx, ForceTool(toolName), override)
}
