package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero
// values. Missing keys are left at their default values.
type Config struct {
	API   APIConfig   `json:"api"`
	Model ModelConfig `json:"model"`
	UI    UIConfig    `json:"ui"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// Endpoint is the chat-completions base URL.
	Endpoint string `json:"endpoint"` // Default: https://api.openai.com/v1
	// APIKeyEnv names the environment variable the key is read from.
	APIKeyEnv string `json:"api_key_env"` // Default: OPENAI_API_KEY
}

// ModelConfig configures default generation parameters. Pointer fields
// distinguish "not set" (omitted from requests) from explicit zeros.
type ModelConfig struct {
	Model               string   `json:"model"`                 // Default: gpt-4o-mini
	ModelName           string   `json:"model_name"`            // Default: "" (no assistant name)
	Temperature         *float64 `json:"temperature"`           // Default: 0.8
	TopP                *float64 `json:"top_p"`                 // Default: 1.0
	MaxCompletionTokens *uint64  `json:"max_completion_tokens"` // Default: 1000
	ParallelToolCalls   *bool    `json:"parallel_tool_calls"`   // Default: unset
	ReasoningEffort     string   `json:"reasoning_effort"`      // Default: "" (backend default)
	PresencePenalty     *float64 `json:"presence_penalty"`      // Default: 0.0
	Strict              *bool    `json:"strict"`                // Default: unset (false)
}

// UIConfig configures the chat TUI.
type UIConfig struct {
	// UserName tags user turns in history; must match ^[a-zA-Z0-9_-]+$.
	UserName string `json:"user_name"` // Default: user
	// MarkdownWidth is the wrap width for rendered assistant turns.
	MarkdownWidth int `json:"markdown_width"` // Default: 80
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	temperature := 0.8
	topP := 1.0
	maxTokens := uint64(1000)
	presence := 0.0
	return &Config{
		API: APIConfig{
			Endpoint:  "https://api.openai.com/v1",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Model: ModelConfig{
			Model:               "gpt-4o-mini",
			Temperature:         &temperature,
			TopP:                &topP,
			MaxCompletionTokens: &maxTokens,
			PresencePenalty:     &presence,
		},
		UI: UIConfig{
			UserName:      "user",
			MarkdownWidth: 80,
		},
	}
}
