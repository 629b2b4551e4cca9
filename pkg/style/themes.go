package style

import "github.com/charmbracelet/lipgloss"

// Outcome colors follow the convert outcomes; texture colors follow the
// classification flags. All adapt to light and dark backgrounds.
var (
	convertedColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}
	failedColor    = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}
	plannedColor   = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB74D"}
	countColor     = lipgloss.AdaptiveColor{Light: "#00838F", Dark: "#4DD0E1"}

	pathColor  = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
	titleColor = lipgloss.AdaptiveColor{Light: "#212121", Dark: "#FAFAFA"}
	dimColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	frameColor = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#424242"}

	modelColor     = lipgloss.AdaptiveColor{Light: "#6A1B9A", Dark: "#BA68C8"}
	normalMapColor = lipgloss.AdaptiveColor{Light: "#0277BD", Dark: "#4FC3F7"}
	readableColor  = lipgloss.AdaptiveColor{Light: "#EF6C00", Dark: "#FFA726"}
)
