package config

import (
	"fmt"
	"strings"

	"github.com/minatoya/callagent/chat"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// API validation
	if !strings.HasPrefix(c.API.Endpoint, "http://") && !strings.HasPrefix(c.API.Endpoint, "https://") {
		errs = append(errs, "api.endpoint must begin with http:// or https://")
	}
	if c.API.APIKeyEnv == "" {
		errs = append(errs, "api.api_key_env must not be empty")
	}

	// Model validation
	if c.Model.Model == "" {
		errs = append(errs, "model.model must not be empty")
	}
	if c.Model.Temperature != nil && (*c.Model.Temperature < 0 || *c.Model.Temperature > 2) {
		errs = append(errs, "model.temperature must be within 0..2")
	}
	if c.Model.TopP != nil && (*c.Model.TopP < 0 || *c.Model.TopP > 1) {
		errs = append(errs, "model.top_p must be within 0..1")
	}
	if c.Model.PresencePenalty != nil && (*c.Model.PresencePenalty < -2 || *c.Model.PresencePenalty > 2) {
		errs = append(errs, "model.presence_penalty must be within -2..2")
	}
	switch c.Model.ReasoningEffort {
	case "", "low", "medium", "high":
	default:
		errs = append(errs, "model.reasoning_effort must be one of low, medium, high")
	}
	if c.Model.ModelName != "" {
		if err := chat.ValidateName(c.Model.ModelName); err != nil {
			errs = append(errs, "model.model_name must match ^[a-zA-Z0-9_-]+$")
		}
	}

	// UI validation
	if c.UI.UserName == "" {
		errs = append(errs, "ui.user_name must not be empty")
	} else if err := chat.ValidateName(c.UI.UserName); err != nil {
		errs = append(errs, "ui.user_name must match ^[a-zA-Z0-9_-]+$")
	}
	if c.UI.MarkdownWidth < 20 {
		errs = append(errs, "ui.markdown_width must be >= 20")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

// ToModelConfig converts the configured model defaults into the client's
// ModelConfig form.
func (c *Config) ToModelConfig() *chat.ModelConfig {
	return &chat.ModelConfig{
		Model:               c.Model.Model,
		ModelName:           c.Model.ModelName,
		Temperature:         c.Model.Temperature,
		TopP:                c.Model.TopP,
		MaxCompletionTokens: c.Model.MaxCompletionTokens,
		ParallelToolCalls:   c.Model.ParallelToolCalls,
		ReasoningEffort:     chat.ReasoningEffort(c.Model.ReasoningEffort),
		PresencePenalty:     c.Model.PresencePenalty,
		Strict:              c.Model.Strict,
	}
}
