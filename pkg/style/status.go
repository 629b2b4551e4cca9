package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/ddsbatch/pkg/rules"
	"github.com/pterm/pterm"
)

// Status of one texture in progress output
type Status string

const (
	StatusConverted Status = "converted"
	StatusFailed    Status = "failed"
	StatusPlanned   Status = "planned"
)

// StatusStyle returns the pterm style for a status label
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusConverted:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusPlanned:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Kind describes a classification in a few words: "model normal-map readable"
func Kind(c rules.Classification) string {
	if c.Excluded {
		return "excluded"
	}
	var parts []string
	if c.IsModel {
		parts = append(parts, "model")
	}
	if c.IsNormalMap {
		parts = append(parts, "normal-map")
	}
	if c.KeepReadable {
		parts = append(parts, "readable")
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, " ")
}

// StyledKind renders Kind with a color per attribute
func StyledKind(c rules.Classification) string {
	if c.Excluded {
		return MutedStyle.Render("excluded")
	}
	var parts []string
	if c.IsModel {
		parts = append(parts, ModelStyle.Render("model"))
	}
	if c.IsNormalMap {
		parts = append(parts, NormalMapStyle.Render("normal-map"))
	}
	if c.KeepReadable {
		parts = append(parts, ReadableStyle.Render("readable"))
	}
	if len(parts) == 0 {
		return MutedStyle.Render("plain")
	}
	return strings.Join(parts, " ")
}

// RenderStatusLine renders one progress line:
//
//	converted  : Squad/Parts/engine.png : model
func RenderStatusLine(status Status, path, detail string) string {
	label := StatusStyle(status).Sprint(fmt.Sprintf(" %-9s ", status))
	if detail == "" {
		return fmt.Sprintf("%s : %s", label, PathStyle.Render(path))
	}
	return fmt.Sprintf("%s : %s : %s", label, PathStyle.Render(path), detail)
}
