// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"github.com/arthur-debert/ddsbatch/pkg/convert"
	"gopkg.in/yaml.v3"
)

// Renderer writes YAML documents, one per call
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderProgress is a no-op; the summary carries every failure
func (r *Renderer) RenderProgress(convert.Result) error {
	return nil
}

// RenderSummary renders the summary as a YAML document
func (r *Renderer) RenderSummary(s *convert.Summary) error {
	return r.encode(s)
}

// RenderValue renders any value as YAML
func (r *Renderer) RenderValue(value interface{}) error {
	return r.encode(value)
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func (r *Renderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
