// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/ddsbatch/pkg/convert"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}
}

// RenderProgress is a no-op; the summary carries every failure
func (r *Renderer) RenderProgress(convert.Result) error {
	return nil
}

// RenderSummary renders the summary as a single JSON document
func (r *Renderer) RenderSummary(s *convert.Summary) error {
	return r.encoder.Encode(s)
}

// RenderValue renders any value as JSON
func (r *Renderer) RenderValue(value interface{}) error {
	return r.encoder.Encode(value)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
