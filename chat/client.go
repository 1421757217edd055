package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Client holds the connection settings shared by every conversation: the
// backend endpoint, the optional API key, the default model
// configuration, and the registry and transport collaborators.
type Client struct {
	endpoint    string
	apiKey      string
	registry    ToolRegistry
	transport   Transport
	modelConfig *ModelConfig
}

// NewClient builds a client for the given chat-completions endpoint.
// apiKey may be empty for backends that do not authenticate. registry
// may be nil when no tools are exposed.
func NewClient(endpoint, apiKey string, registry ToolRegistry, transport Transport) *Client {
	return &Client{
		endpoint:  strings.TrimRight(endpoint, "/"),
		apiKey:    apiKey,
		registry:  registry,
		transport: transport,
	}
}

// SetModelConfig installs the process-wide default model configuration.
func (c *Client) SetModelConfig(cfg *ModelConfig) {
	if cfg == nil {
		c.modelConfig = nil
		return
	}
	copied := *cfg
	c.modelConfig = &copied
}

// Endpoint returns the configured endpoint with any trailing slash
// trimmed.
func (c *Client) Endpoint() string { return c.endpoint }

// NewConversation creates an empty conversation bound to this client.
// The conversation exclusively owns its history; it is not safe for
// unsynchronized concurrent use from multiple goroutines.
func (c *Client) NewConversation() *Conversation {
	return &Conversation{client: c}
}

// resolveConfig merges a per-call override over the default
// configuration. Fails when neither exists.
func (c *Client) resolveConfig(override *ModelConfig) (ModelConfig, error) {
	if c.modelConfig == nil {
		if override == nil {
			return ModelConfig{}, ErrModelConfigNotSet
		}
		return *override, nil
	}
	return c.modelConfig.merge(override), nil
}

// enabledToolDefs snapshots the registry's enabled definitions in wire
// form, applying the resolved strict flag to each.
func (c *Client) enabledToolDefs(cfg ModelConfig) []ToolDef {
	if c.registry == nil {
		return nil
	}
	definitions := c.registry.EnabledDefinitions()
	if len(definitions) == 0 {
		return nil
	}
	defs := make([]ToolDef, 0, len(definitions))
	for _, def := range definitions {
		defs = append(defs, ToolDef{
			Type: "function",
			Function: FunctionDef{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.Parameters,
				Strict:      cfg.strictEnabled(),
			},
		})
	}
	return defs
}

// buildRequest assembles the outbound payload from history, the resolved
// configuration, the tool-choice mode, and the definitions snapshot.
func buildRequest(history []Message, choice ToolChoice, defs []ToolDef, cfg ModelConfig) ([]byte, error) {
	request := apiRequest{
		Model:               cfg.Model,
		Messages:            history,
		Tools:               defs,
		ToolChoice:          choice.encode(),
		Temperature:         cfg.Temperature,
		TopP:                cfg.TopP,
		MaxCompletionTokens: cfg.MaxCompletionTokens,
		ParallelToolCalls:   cfg.ParallelToolCalls,
		ReasoningEffort:     string(cfg.ReasoningEffort),
		PresencePenalty:     cfg.PresencePenalty,
	}
	return json.Marshal(request)
}

// callAPI runs one exchange: endpoint validation, request assembly,
// transport send, header parsing, and body decoding.
func (c *Client) callAPI(ctx context.Context, history []Message, choice ToolChoice, cfg ModelConfig) (*APIResult, error) {
	url := c.endpoint + "/chat/completions"
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, ErrInvalidEndpoint
	}

	payload, err := buildRequest(c.history(history), choice, c.enabledToolDefs(cfg), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}
	raw, err := c.transport.Send(ctx, url, headers, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	result := &APIResult{Headers: parseResponseHeaders(raw.Header)}
	if len(raw.Body) == 0 {
		return nil, ErrInvalidResponse
	}
	if err := json.Unmarshal(raw.Body, &result.Response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return result, nil
}

// history normalizes a nil history to an empty slice so the wire field
// is always an array.
func (c *Client) history(history []Message) []Message {
	if history == nil {
		return []Message{}
	}
	return history
}
