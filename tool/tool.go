// Package tool defines the capability interface the conversation engine
// dispatches to, the name-keyed registry that owns registered
// capabilities, and helpers for building tools from typed Go functions.
package tool

// Tool is one externally registered capability the model can invoke
// mid-conversation. Implementations must be safe for repeated
// synchronous invocation; Run is called one invocation at a time, never
// concurrently within a round.
type Tool interface {
	// Name is the unique identifier the backend selects the tool by.
	Name() string

	// Description tells the model what the tool does.
	Description() string

	// Parameters returns the JSON-schema value describing the tool's
	// input.
	Parameters() any

	// Run executes the tool with the parsed JSON arguments. A returned
	// error is a human-readable invocation failure; it must never panic
	// or abort the process.
	Run(args any) (string, error)
}
