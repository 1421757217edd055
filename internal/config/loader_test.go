package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	// Config file doesn't exist - should return all defaults
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{}, // Empty - no config file
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "https://api.openai.com/v1", cfg.API.Endpoint)
	assert.Equal(t, "OPENAI_API_KEY", cfg.API.APIKeyEnv)
	assert.Equal(t, "gpt-4o-mini", cfg.Model.Model)
	require.NotNil(t, cfg.Model.Temperature)
	assert.Equal(t, 0.8, *cfg.Model.Temperature)
	assert.Equal(t, "user", cfg.UI.UserName)
	assert.Equal(t, 80, cfg.UI.MarkdownWidth)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	// Config file overrides every field
	configJSON := `{
		"api": {"endpoint": "http://localhost:8080/v1", "api_key_env": "LOCAL_KEY"},
		"model": {
			"model": "gpt-4o",
			"model_name": "assistant",
			"temperature": 0.2,
			"top_p": 0.9,
			"max_completion_tokens": 4096,
			"parallel_tool_calls": false,
			"reasoning_effort": "high",
			"presence_penalty": 1.5,
			"strict": true
		},
		"ui": {"user_name": "alice", "markdown_width": 120}
	}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/callagent/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/v1", cfg.API.Endpoint)
	assert.Equal(t, "LOCAL_KEY", cfg.API.APIKeyEnv)
	assert.Equal(t, "gpt-4o", cfg.Model.Model)
	assert.Equal(t, "assistant", cfg.Model.ModelName)
	assert.Equal(t, 0.2, *cfg.Model.Temperature)
	assert.Equal(t, 0.9, *cfg.Model.TopP)
	assert.Equal(t, uint64(4096), *cfg.Model.MaxCompletionTokens)
	assert.Equal(t, false, *cfg.Model.ParallelToolCalls)
	assert.Equal(t, "high", cfg.Model.ReasoningEffort)
	assert.Equal(t, 1.5, *cfg.Model.PresencePenalty)
	assert.Equal(t, true, *cfg.Model.Strict)
	assert.Equal(t, "alice", cfg.UI.UserName)
	assert.Equal(t, 120, cfg.UI.MarkdownWidth)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	// Config file only overrides the model name - rest should be defaults
	configJSON := `{"model": {"model": "gpt-4o"}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/callagent/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model.Model)                     // Overridden
	assert.Equal(t, "https://api.openai.com/v1", cfg.API.Endpoint) // Default
	assert.Equal(t, 0.8, *cfg.Model.Temperature)                   // Default
	assert.Equal(t, "user", cfg.UI.UserName)                       // Default
}

func TestLoad_ExplicitZeroOverridesDefault(t *testing.T) {
	// Explicit zero in the file wins over a non-zero default
	configJSON := `{"model": {"temperature": 0}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/callagent/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	require.NotNil(t, cfg.Model.Temperature)
	assert.Equal(t, 0.0, *cfg.Model.Temperature)
}

func TestLoad_EmptyConfigFile_ReturnsDefaults(t *testing.T) {
	// Empty JSON object - should use all defaults
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/callagent/config.json": []byte(`{}`),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.Model.Model)
	assert.Equal(t, 80, cfg.UI.MarkdownWidth)
}

// --- ERROR PATH TESTS ---

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	// Can't resolve home dir - fall back to defaults silently
	fs := &MockFileSystem{
		HomeDirErr: errors.New("no home"),
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.Model.Model)
}

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/callagent/config.json": []byte(`{not json`),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PermissionError_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidMergedConfig_ReturnsError(t *testing.T) {
	// File parses but the merged result fails validation
	configJSON := `{"model": {"temperature": 9.5}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/callagent/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "temperature")
}
