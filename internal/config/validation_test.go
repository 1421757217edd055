package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minatoya/callagent/chat"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantMsg string
	}{
		{
			"endpoint without scheme",
			func(c *Config) { c.API.Endpoint = "api.openai.com/v1" },
			"api.endpoint",
		},
		{
			"ftp endpoint",
			func(c *Config) { c.API.Endpoint = "ftp://api.openai.com/v1" },
			"api.endpoint",
		},
		{
			"empty api key env",
			func(c *Config) { c.API.APIKeyEnv = "" },
			"api.api_key_env",
		},
		{
			"empty model",
			func(c *Config) { c.Model.Model = "" },
			"model.model",
		},
		{
			"temperature above range",
			func(c *Config) { *c.Model.Temperature = 2.1 },
			"model.temperature",
		},
		{
			"temperature below range",
			func(c *Config) { *c.Model.Temperature = -0.1 },
			"model.temperature",
		},
		{
			"top_p above range",
			func(c *Config) { *c.Model.TopP = 1.5 },
			"model.top_p",
		},
		{
			"presence penalty out of range",
			func(c *Config) { *c.Model.PresencePenalty = -3 },
			"model.presence_penalty",
		},
		{
			"unknown reasoning effort",
			func(c *Config) { c.Model.ReasoningEffort = "extreme" },
			"model.reasoning_effort",
		},
		{
			"model name with spaces",
			func(c *Config) { c.Model.ModelName = "my model" },
			"model.model_name",
		},
		{
			"empty user name",
			func(c *Config) { c.UI.UserName = "" },
			"ui.user_name",
		},
		{
			"user name with colon",
			func(c *Config) { c.UI.UserName = "user:1" },
			"ui.user_name",
		},
		{
			"markdown width too small",
			func(c *Config) { c.UI.MarkdownWidth = 10 },
			"ui.markdown_width",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Endpoint = "bad"
	cfg.Model.Model = ""
	cfg.UI.MarkdownWidth = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.endpoint")
	assert.Contains(t, err.Error(), "model.model")
	assert.Contains(t, err.Error(), "ui.markdown_width")
}

func TestValidate_AcceptsBoundaryValues(t *testing.T) {
	cfg := DefaultConfig()
	*cfg.Model.Temperature = 2.0
	*cfg.Model.TopP = 0.0
	*cfg.Model.PresencePenalty = -2.0
	cfg.Model.ReasoningEffort = "low"
	cfg.UI.MarkdownWidth = 20

	assert.NoError(t, cfg.Validate())
}

func TestToModelConfig_CopiesAllFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model.Model = "gpt-4o"
	cfg.Model.ModelName = "assistant"
	cfg.Model.ReasoningEffort = "medium"
	strict := true
	cfg.Model.Strict = &strict

	mc := cfg.ToModelConfig()

	assert.Equal(t, "gpt-4o", mc.Model)
	assert.Equal(t, "assistant", mc.ModelName)
	assert.Equal(t, chat.EffortMedium, mc.ReasoningEffort)
	assert.Same(t, cfg.Model.Temperature, mc.Temperature)
	assert.Same(t, cfg.Model.TopP, mc.TopP)
	assert.Same(t, cfg.Model.MaxCompletionTokens, mc.MaxCompletionTokens)
	assert.Same(t, cfg.Model.PresencePenalty, mc.PresencePenalty)
	assert.Same(t, cfg.Model.Strict, mc.Strict)
	assert.Nil(t, mc.ParallelToolCalls)
}
