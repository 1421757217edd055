package tool

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Validator is implemented by request types that check their own
// invariants after decoding.
type Validator interface {
	Validate() error
}

// RunFunc executes a tool with a typed request.
type RunFunc[Req, Resp any] func(req Req) (Resp, error)

// TypedTool adapts a typed Go function into a Tool. It centralizes what
// every tool otherwise repeats: decoding the argument map into the
// request type, optional validation, execution, and marshaling the
// response back to JSON.
type TypedTool[Req, Resp any] struct {
	name        string
	description string
	parameters  any
	run         RunFunc[Req, Resp]
}

// NewTyped builds a TypedTool whose parameter schema is derived from the
// Req struct.
func NewTyped[Req, Resp any](name, description string, run RunFunc[Req, Resp]) *TypedTool[Req, Resp] {
	return &TypedTool[Req, Resp]{
		name:        name,
		description: description,
		parameters:  GenerateSchema[Req](),
		run:         run,
	}
}

// NewTypedWithSchema builds a TypedTool with a hand-written parameter
// schema, for tools whose schema cannot be expressed through reflection.
func NewTypedWithSchema[Req, Resp any](name, description string, parameters any, run RunFunc[Req, Resp]) *TypedTool[Req, Resp] {
	return &TypedTool[Req, Resp]{
		name:        name,
		description: description,
		parameters:  parameters,
		run:         run,
	}
}

// Name implements Tool.
func (t *TypedTool[Req, Resp]) Name() string { return t.name }

// Description implements Tool.
func (t *TypedTool[Req, Resp]) Description() string { return t.description }

// Parameters implements Tool.
func (t *TypedTool[Req, Resp]) Parameters() any { return t.parameters }

// Run implements Tool: decode, validate, execute, marshal.
func (t *TypedTool[Req, Resp]) Run(args any) (string, error) {
	var req Req
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &req,
		TagName: "json",
	})
	if err != nil {
		return "", fmt.Errorf("decoder setup failed: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", fmt.Errorf("%s validation failed: %w", t.name, err)
		}
	}

	resp, err := t.run(req)
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(raw), nil
}
