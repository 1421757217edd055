package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLength_CountsRunes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"ascii", "hello", `{"length": 5}`},
		{"multibyte", "héllo wörld", `{"length": 11}`},
		{"cjk", "日本語", `{"length": 3}`},
		{"emoji", "🙂🙂", `{"length": 2}`},
	}
	tool := NewTextLength()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tool.Run(map[string]any{"text": tt.text})
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestTextLength_RejectsEmptyText(t *testing.T) {
	tool := NewTextLength()

	_, err := tool.Run(map[string]any{"text": ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 'text' parameter")

	_, err = tool.Run(map[string]any{})
	assert.Error(t, err)
}

func TestTextLength_Definition(t *testing.T) {
	tool := NewTextLength()
	assert.Equal(t, "text_length", tool.Name())
	assert.NotEmpty(t, tool.Description())
	assert.NotNil(t, tool.Parameters())
}
