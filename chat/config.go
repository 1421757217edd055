package chat

// ReasoningEffort selects how much effort a reasoning model spends
// before answering.
type ReasoningEffort string

const (
	EffortLow    ReasoningEffort = "low"
	EffortMedium ReasoningEffort = "medium"
	EffortHigh   ReasoningEffort = "high"
)

// ModelConfig holds per-request model parameters. All optional fields are
// pointers to distinguish "not set" from the zero value; a field left nil
// is omitted from the wire request.
//
// A per-call override, when given, wins field-by-field over the
// process-wide default; a field absent in the override falls back to the
// default, never to a hardcoded literal.
type ModelConfig struct {
	// Model is the backend model identifier, e.g. "gpt-4o-mini".
	Model string
	// ModelName optionally names the assistant in history entries.
	ModelName string
	// Temperature controls sampling diversity.
	Temperature *float64
	// TopP is the nucleus sampling parameter.
	TopP *float64
	// MaxCompletionTokens caps generated output length.
	MaxCompletionTokens *uint64
	// ParallelToolCalls lets the backend emit multiple tool calls per
	// turn. The client still dispatches them one at a time, in order.
	ParallelToolCalls *bool
	// ReasoningEffort is low/medium/high; empty means backend default.
	ReasoningEffort ReasoningEffort
	// PresencePenalty ranges -2.0..2.0.
	PresencePenalty *float64
	// Strict requests strictly structured tool arguments. Applied to
	// every tool definition at request-assembly time; defaults to false.
	Strict *bool
}

// merge returns the effective configuration for one round: override
// fields win where set, the receiver's fields fill the gaps.
func (c ModelConfig) merge(override *ModelConfig) ModelConfig {
	if override == nil {
		return c
	}
	out := c
	if override.Model != "" {
		out.Model = override.Model
	}
	if override.ModelName != "" {
		out.ModelName = override.ModelName
	}
	if override.Temperature != nil {
		out.Temperature = override.Temperature
	}
	if override.TopP != nil {
		out.TopP = override.TopP
	}
	if override.MaxCompletionTokens != nil {
		out.MaxCompletionTokens = override.MaxCompletionTokens
	}
	if override.ParallelToolCalls != nil {
		out.ParallelToolCalls = override.ParallelToolCalls
	}
	if override.ReasoningEffort != "" {
		out.ReasoningEffort = override.ReasoningEffort
	}
	if override.PresencePenalty != nil {
		out.PresencePenalty = override.PresencePenalty
	}
	if override.Strict != nil {
		out.Strict = override.Strict
	}
	return out
}

// strictEnabled resolves the Strict flag with its documented default.
func (c ModelConfig) strictEnabled() bool {
	return c.Strict != nil && *c.Strict
}

// Float64 returns a pointer to v, for ModelConfig literals.
func Float64(v float64) *float64 { return &v }

// Uint64 returns a pointer to v, for ModelConfig literals.
func Uint64(v uint64) *uint64 { return &v }

// Bool returns a pointer to v, for ModelConfig literals.
func Bool(v bool) *bool { return &v }
