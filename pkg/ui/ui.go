// Package ui renders batch progress and summaries. It supports terminal
// (rich), text (plain), JSON and YAML output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/ddsbatch/pkg/convert"
	"github.com/arthur-debert/ddsbatch/pkg/ui/json"
	"github.com/arthur-debert/ddsbatch/pkg/ui/terminal"
	"github.com/arthur-debert/ddsbatch/pkg/ui/text"
	"github.com/arthur-debert/ddsbatch/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderProgress reports one handled image while the batch runs
	RenderProgress(result convert.Result) error

	// RenderSummary renders the end-of-batch summary
	RenderSummary(summary *convert.Summary) error

	// RenderValue renders command data such as classifications or lint issues
	RenderValue(value interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
