// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/ddsbatch/pkg/convert"
	"github.com/arthur-debert/ddsbatch/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// Styler is implemented by values with a styled terminal rendering
type Styler interface {
	Styled() string
}

// Texter is implemented by values with a plain text rendering
type Texter interface {
	Text() string
}

// Renderer provides rich terminal output using lipgloss and pterm styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderProgress prints a status line for each converted, failed or planned image
func (r *Renderer) RenderProgress(res convert.Result) error {
	var line string
	switch res.Outcome {
	case convert.Converted:
		line = style.RenderStatusLine(style.StatusConverted, string(res.Path), style.StyledKind(res.Classification))
	case convert.Failed:
		line = style.RenderStatusLine(style.StatusFailed, string(res.Path), style.ErrorStyle.Render(errText(res.Err)))
	case convert.Planned:
		line = style.RenderStatusLine(style.StatusPlanned, string(res.Path), style.CodeStyle.Render(strings.TrimSpace(res.Invocation.Flags+" "+res.Invocation.Scale)))
	default:
		return nil
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderSummary renders the counts in a box, followed by the failure list
func (r *Renderer) RenderSummary(s *convert.Summary) error {
	var rows []string
	row := func(label string, value int, st lipgloss.Style) {
		rows = append(rows, style.LabelStyle.Render(label)+st.Render(fmt.Sprint(value)))
	}

	title := "Conversion summary"
	if s.DryRun {
		title = "Dry run"
	}

	row("discovered", s.Discovered, style.InfoStyle)
	row("excluded", s.Excluded, style.MutedStyle)
	if s.DryRun {
		row("planned", s.Planned, style.WarningStyle)
	} else {
		row("converted", s.Converted, style.SuccessStyle)
		failed := style.MutedStyle
		if s.Failed > 0 {
			failed = style.ErrorStyle
		}
		row("failed", s.Failed, failed)
		rows = append(rows, style.LabelStyle.Render("time")+s.Duration.Round(time.Millisecond).String())
	}
	if s.Cancelled {
		rows = append(rows, style.WarningStyle.Render("interrupted"))
	}

	body := style.TitleStyle.Render(title) + "\n" + strings.Join(rows, "\n")
	if _, err := fmt.Fprintln(r.output, style.BoxStyle.Render(body)); err != nil {
		return err
	}

	if len(s.Failures) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(style.ErrorStyle.Render("Failures") + "\n")
	for _, f := range s.Failures {
		fmt.Fprintf(&b, "  %s %s\n    %s\n", style.ErrorIndicator, style.PathStyle.Render(f.Path), style.MutedStyle.Render(f.Error))
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderValue renders a Styler or Texter, falling back to the default formatting
func (r *Renderer) RenderValue(value interface{}) error {
	var out string
	switch v := value.(type) {
	case Styler:
		out = v.Styled()
	case Texter:
		out = v.Text()
	default:
		out = fmt.Sprintf("%+v", value)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(r.output, out)
	return err
}

// RenderError renders an error in a red alert box
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, style.AlertBoxStyle.Render(style.ErrorStyle.Render("Error: ")+err.Error()))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
