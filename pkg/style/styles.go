// Package style holds the lipgloss and pterm styles used for terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Width(12)

	MutedStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(convertedColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(failedColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(plannedColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(countColor)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(frameColor).
			Padding(0, 2)

	AlertBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(failedColor).
			Padding(0, 2)

	PathStyle = lipgloss.NewStyle().
			Foreground(pathColor)

	CodeStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true)
)

// Texture kind styles
var (
	ModelStyle = lipgloss.NewStyle().
			Foreground(modelColor).
			Bold(true)

	NormalMapStyle = lipgloss.NewStyle().
			Foreground(normalMapColor).
			Bold(true)

	ReadableStyle = lipgloss.NewStyle().
			Foreground(readableColor)
)

// Indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
)
