package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tassiovirginio/envy-tui/internal/envycontrol"
)

// Palette for the dark theme. Mode colors double as accents for row
// markers and the header mode line.
const (
	colorBackground = "#16161e"
	colorForeground = "#dcdce6"
	colorAccent     = "#8b5cf6"
	colorSuccess    = "#22c55e"
	colorError      = "#ef4444"
	colorWarning    = "#eab308"
	colorMuted      = "#646478"
	colorBorder     = "#3c3c50"
	colorSelection  = "#28283c"
	colorIntegrated = "#3b82f6"
	colorHybrid     = "#10b981"
	colorNvidia     = "#76b900"
)

// Styles contains the shared style definitions used across panels and
// modals. Constructed once; rendering derives per-row variants from these
// rather than building styles from scratch.
var Styles = struct {
	TitleIcon         lipgloss.Style // brand glyph, nvidia green
	TitleAccent       lipgloss.Style // "Envy"
	TitleRest         lipgloss.Style // "TUI"
	Normal            lipgloss.Style
	Muted             lipgloss.Style
	Hint              lipgloss.Style
	Accent            lipgloss.Style
	Success           lipgloss.Style
	Warning           lipgloss.Style
	Error             lipgloss.Style
	Selected          lipgloss.Style // selected row background
	Separator         lipgloss.Style // header/footer dividers
	Panel             lipgloss.Style
	PanelFocused      lipgloss.Style
	PanelTitle        lipgloss.Style
	PanelFocusedTitle lipgloss.Style
	Modal             lipgloss.Style // border color applied per lifecycle phase
}{
	TitleIcon:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorNvidia)),
	TitleAccent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
	TitleRest:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorForeground)),
	Normal:      lipgloss.NewStyle().Foreground(lipgloss.Color(colorForeground)),
	Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)),
	Success:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess)),
	Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarning)),
	Error:       lipgloss.NewStyle().Foreground(lipgloss.Color(colorError)),
	Selected:    lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(colorSelection)),
	Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorBorder)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(1, 2),
	PanelFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Padding(1, 2),
	PanelTitle:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorMuted)),
	PanelFocusedTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2),
}

// ModeColor returns the accent color associated with a graphics mode.
// Unknown maps to the muted color.
func ModeColor(m envycontrol.Mode) lipgloss.Color {
	switch m {
	case envycontrol.ModeIntegrated:
		return lipgloss.Color(colorIntegrated)
	case envycontrol.ModeHybrid:
		return lipgloss.Color(colorHybrid)
	case envycontrol.ModeNvidia:
		return lipgloss.Color(colorNvidia)
	default:
		return lipgloss.Color(colorMuted)
	}
}
