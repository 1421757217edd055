// Package tui implements the Bubble Tea chat interface for cmd/chat.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// EventKind discriminates engine-to-UI events.
type EventKind int

const (
	// EventMessage adds one transcript entry.
	EventMessage EventKind = iota
	// EventStatus updates the ephemeral status line.
	EventStatus
	// EventError reports a failed round.
	EventError
	// EventRoundDone marks the end of a round; the input unlocks.
	EventRoundDone
)

// Event is one engine-to-UI notification.
type Event struct {
	Kind EventKind
	// Role tags transcript entries: "user", "assistant", or "tool".
	Role string
	Text string
}

// Channels connects the chat engine loop with the UI. The engine reads
// user lines from UserInput and pushes Events back.
type Channels struct {
	UserInput chan string
	Events    chan Event
}

// NewChannels creates the channel pair with default buffers.
func NewChannels() *Channels {
	return &Channels{
		UserInput: make(chan string),
		Events:    make(chan Event, 16),
	}
}

// UI wraps the Bubble Tea program.
type UI struct {
	program *tea.Program
}

// New builds the UI over the given channels and renderer.
func New(channels *Channels, renderer MarkdownRenderer) *UI {
	model := newModel(channels, renderer)
	return &UI{program: tea.NewProgram(model, tea.WithAltScreen())}
}

// Run starts the UI and blocks until the user quits.
func (u *UI) Run() error {
	_, err := u.program.Run()
	return err
}
