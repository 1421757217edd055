// Package main provides the interactive chat client. It wires the
// conversation engine to the default HTTP transport, registers the
// example tools, and runs the Bubble Tea interface.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/minatoya/callagent/chat"
	"github.com/minatoya/callagent/internal/config"
	"github.com/minatoya/callagent/internal/tools"
	"github.com/minatoya/callagent/internal/tui"
	"github.com/minatoya/callagent/tool"
	"github.com/minatoya/callagent/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	apiKey := os.Getenv(cfg.API.APIKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("%s environment variable is required", cfg.API.APIKeyEnv)
	}

	registry := tool.NewRegistry()
	registry.Register(tools.NewTextLength())
	registry.Register(tools.NewRepoStatus())

	client := chat.NewClient(cfg.API.Endpoint, apiKey, registry, transport.NewHTTP(nil))
	client.SetModelConfig(cfg.ToModelConfig())
	conversation := client.NewConversation()

	channels := tui.NewChannels()
	ui := tui.New(channels, tui.NewGlamourRenderer())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go chatLoop(ctx, channels, conversation, cfg.UI.UserName)

	return ui.Run()
}

// chatLoop reads user lines, runs one tool-capable round per line, and
// streams the resulting history entries back to the UI.
func chatLoop(ctx context.Context, channels *tui.Channels, conversation *chat.Conversation, userName string) {
	for {
		var line string
		select {
		case <-ctx.Done():
			return
		case line = <-channels.UserInput:
		}

		message, err := chat.NewUserMessage(userName, chat.TextContent{Text: line})
		if err != nil {
			channels.Events <- tui.Event{Kind: tui.EventError, Text: err.Error()}
			continue
		}
		conversation.Append(message)

		before := len(conversation.History())
		_, err = conversation.GenerateWithTools(ctx, nil)
		emitNewEntries(channels, conversation.History()[before:])
		if err != nil {
			channels.Events <- tui.Event{Kind: tui.EventError, Text: err.Error()}
			continue
		}

		// A round that ran tools leaves the transcript on a tool result.
		// Run one text-only round so the model can answer from it.
		if last, ok := conversation.Last(); ok {
			if _, isTool := last.(*chat.ToolMessage); isTool {
				channels.Events <- tui.Event{Kind: tui.EventStatus, Text: "summarizing tool results..."}
				before = len(conversation.History())
				if _, err := conversation.GenerateText(ctx, nil); err != nil {
					channels.Events <- tui.Event{Kind: tui.EventError, Text: err.Error()}
					continue
				}
				emitNewEntries(channels, conversation.History()[before:])
			}
		}
		channels.Events <- tui.Event{Kind: tui.EventRoundDone}
	}
}

// emitNewEntries forwards the history entries produced by one round.
// Partial progress from a failed round still shows up in the transcript.
func emitNewEntries(channels *tui.Channels, entries []chat.Message) {
	for _, message := range entries {
		switch m := message.(type) {
		case *chat.AssistantMessage:
			for _, call := range m.ToolCalls {
				channels.Events <- tui.Event{
					Kind: tui.EventMessage,
					Role: "tool",
					Text: fmt.Sprintf("calling %s(%s)", call.Function.Name, call.Function.ArgumentsJSON()),
				}
			}
			if text := assistantText(m); text != "" {
				channels.Events <- tui.Event{Kind: tui.EventMessage, Role: "assistant", Text: text}
			}
		case *chat.ToolMessage:
			channels.Events <- tui.Event{
				Kind: tui.EventMessage,
				Role: "tool",
				Text: fmt.Sprintf("-> %s", m.String()),
			}
		}
	}
}

func assistantText(m *chat.AssistantMessage) string {
	var out string
	for _, c := range m.Content {
		if t, ok := c.(chat.TextContent); ok {
			out += t.Text
		}
	}
	return out
}
