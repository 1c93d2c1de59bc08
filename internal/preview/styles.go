package preview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nao1215/neuroscan/internal/theme"
)

// Styles holds the lipgloss styles of the preview.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Neural    lipgloss.Style
	Graph     lipgloss.Style
	Card      lipgloss.Style
	Selected  lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Stat      lipgloss.Style
	Help      lipgloss.Style

	// GradientStart and GradientEnd color the progress bar.
	GradientStart string
	GradientEnd   string
}

// color looks up scale.shade and falls back to def when the palette lacks it.
func color(t theme.Tokens, scale, shade, def string) lipgloss.Color {
	if c, ok := t.Color(scale, shade); ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(def)
}

// NewStyles derives the preview styles from the theme palette.
func NewStyles(t theme.Tokens) Styles {
	primary := color(t, theme.ScaleMedical, "primary", "#2563eb")
	accent := color(t, theme.ScaleMedical, "accent", "#3b82f6")
	dark := color(t, theme.ScaleMedical, "dark", "#1e3a8a")
	neural := color(t, theme.ScaleNeural, "400", "#38bdf8")
	success := color(t, theme.ScaleSuccess, "500", "#22c55e")
	muted := color(t, theme.ScaleGray, "500", "#64748b")
	border := color(t, theme.ScaleGray, "300", "#cbd5e1")

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtitle:  lipgloss.NewStyle().Foreground(dark),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Accent:    lipgloss.NewStyle().Foreground(accent),
		Success:   lipgloss.NewStyle().Foreground(success),
		Neural:    lipgloss.NewStyle().Foreground(neural),
		Graph:     lipgloss.NewStyle().Foreground(neural).Border(lipgloss.RoundedBorder()).BorderForeground(border),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Selected:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(primary).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(primary).Underline(true).Padding(0, 1),
		Stat:      lipgloss.NewStyle().Bold(true).Foreground(primary),
		Help:      lipgloss.NewStyle().Foreground(muted).MarginTop(1),

		GradientStart: string(primary),
		GradientEnd:   string(neural),
	}
}
