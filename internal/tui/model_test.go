package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// plainRenderer skips glamour so assertions see raw text.
type plainRenderer struct {
	err error
}

func (r plainRenderer) Render(markdown string, width int) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "[md]" + markdown + "\n", nil
}

func TestFormatTranscript_Empty(t *testing.T) {
	out := formatTranscript(nil, 80, plainRenderer{})
	assert.Contains(t, out, "No messages yet")
}

func TestFormatTranscript_RolesAreStyledDistinctly(t *testing.T) {
	transcript := []entry{
		{role: "user", text: "hello"},
		{role: "assistant", text: "**hi**"},
		{role: "tool", text: "calling text_length({\"text\":\"hi\"})"},
		{role: "error", text: "boom"},
	}

	out := formatTranscript(transcript, 80, plainRenderer{})

	assert.Contains(t, out, "You: hello")
	// Assistant turns pass through the markdown renderer, trailing
	// newline trimmed.
	assert.Contains(t, out, "[md]**hi**")
	assert.NotContains(t, out, "[md]**hi**\n\n\n")
	assert.Contains(t, out, "calling text_length")
	assert.Contains(t, out, "Error: boom")
}

func TestFormatTranscript_RendererFailureFallsBackToRawText(t *testing.T) {
	transcript := []entry{{role: "assistant", text: "# raw heading"}}

	out := formatTranscript(transcript, 80, plainRenderer{err: errors.New("render failed")})

	assert.Contains(t, out, "# raw heading")
	assert.NotContains(t, out, "[md]")
}

func TestApplyEvent_Transitions(t *testing.T) {
	m := newModel(NewChannels(), plainRenderer{})
	m.busy = true
	m.status = "waiting for model..."

	m.applyEvent(Event{Kind: EventMessage, Role: "assistant", Text: "hi"})
	assert.Len(t, m.transcript, 1)
	assert.True(t, m.busy, "messages alone do not end the round")

	m.applyEvent(Event{Kind: EventStatus, Text: "calling tool"})
	assert.Equal(t, "calling tool", m.status)

	m.applyEvent(Event{Kind: EventRoundDone})
	assert.False(t, m.busy)
	assert.Empty(t, m.status)
}

func TestApplyEvent_ErrorEndsRound(t *testing.T) {
	m := newModel(NewChannels(), plainRenderer{})
	m.busy = true

	m.applyEvent(Event{Kind: EventError, Text: "network down"})

	assert.False(t, m.busy)
	assert.Len(t, m.transcript, 1)
	assert.Equal(t, "error", m.transcript[0].role)
	assert.True(t, strings.Contains(formatTranscript(m.transcript, 80, plainRenderer{}), "network down"))
}
