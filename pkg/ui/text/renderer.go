// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/ddsbatch/pkg/convert"
)

// Texter is implemented by values that know their plain text rendering
type Texter interface {
	Text() string
}

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderProgress prints one line per handled image. Excluded images are
// not reported.
func (r *Renderer) RenderProgress(res convert.Result) error {
	line := ProgressLine(res)
	if line == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

// ProgressLine returns the plain progress line for a result
func ProgressLine(res convert.Result) string {
	switch res.Outcome {
	case convert.Converted:
		return fmt.Sprintf("converted %s", res.Path)
	case convert.Failed:
		return fmt.Sprintf("FAILED to convert %s: %v", res.Path, res.Err)
	case convert.Planned:
		return fmt.Sprintf("would run %s", res.Invocation)
	default:
		return ""
	}
}

// RenderSummary renders the end-of-batch counts and the failure list
func (r *Renderer) RenderSummary(s *convert.Summary) error {
	_, err := io.WriteString(r.output, SummaryText(s))
	return err
}

// SummaryText formats a summary as plain text
func SummaryText(s *convert.Summary) string {
	var b strings.Builder

	if s.DryRun {
		fmt.Fprintf(&b, "Dry run: %d planned, %d excluded, %d discovered\n",
			s.Planned, s.Excluded, s.Discovered)
	} else {
		fmt.Fprintf(&b, "%d converted, %d failed, %d excluded, %d discovered in %s\n",
			s.Converted, s.Failed, s.Excluded, s.Discovered, s.Duration.Round(time.Millisecond))
	}
	if s.Cancelled {
		b.WriteString("Interrupted before all images were handled\n")
	}

	if len(s.Failures) > 0 {
		b.WriteString("Failures:\n")
		for _, f := range s.Failures {
			fmt.Fprintf(&b, "  %s: %s\n", f.Path, f.Error)
		}
	}
	return b.String()
}

// RenderValue renders a Texter, falling back to the default formatting
func (r *Renderer) RenderValue(value interface{}) error {
	if t, ok := value.(Texter); ok {
		_, err := io.WriteString(r.output, withNewline(t.Text()))
		return err
	}
	_, err := fmt.Fprintf(r.output, "%+v\n", value)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func withNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
