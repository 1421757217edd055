// Package tools provides the example tools registered by the chat CLI.
package tools

import (
	"errors"
	"unicode/utf8"

	"github.com/minatoya/callagent/tool"
)

// TextLengthRequest is the input for the text_length tool.
type TextLengthRequest struct {
	Text string `json:"text" jsonschema_description:"Input text to calculate its length"`
}

// Validate implements tool.Validator.
func (r TextLengthRequest) Validate() error {
	if r.Text == "" {
		return errors.New("missing 'text' parameter")
	}
	return nil
}

// TextLengthResponse is the output of the text_length tool.
type TextLengthResponse struct {
	Length int `json:"length"`
}

// NewTextLength builds the text_length tool: it reports the rune count
// of the input text.
func NewTextLength() tool.Tool {
	return tool.NewTyped(
		"text_length",
		"Returns the length of the input text.",
		func(req TextLengthRequest) (TextLengthResponse, error) {
			return TextLengthResponse{Length: utf8.RuneCountInString(req.Text)}, nil
		},
	)
}
