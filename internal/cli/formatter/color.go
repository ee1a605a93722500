package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor drops all styling, for non-TTY output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// SeverityStyle maps a severity to its display style.
func SeverityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityCritical:
		return StyleRed
	case domain.SeverityHigh:
		return StyleRed
	case domain.SeverityMedium:
		return StyleYellow
	case domain.SeverityLow:
		return StyleBlue
	default:
		return StyleDim
	}
}

// SeverityLabel renders an upper-cased, colored severity tag.
func SeverityLabel(s domain.Severity) string {
	return SeverityStyle(s).Render(strings.ToUpper(string(s)))
}

// RiskIndicator renders a colored risk indicator such as "● HIGH".
func RiskIndicator(risk domain.RiskLevel) string {
	switch risk {
	case domain.RiskHigh:
		return StyleRed.Render("● HIGH")
	case domain.RiskMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.RiskLow:
		return StyleGreen.Render("● LOW")
	case domain.RiskNone:
		return StyleDim.Render("● NONE")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// TrendArrow renders a colored trend direction.
func TrendArrow(t domain.TrendDirection) string {
	switch t {
	case domain.TrendIncreasing:
		return StyleYellow.Render("↑ increasing")
	case domain.TrendDecreasing:
		return StyleBlue.Render("↓ decreasing")
	case domain.TrendDeclining:
		return StyleRed.Render("↓ declining")
	default:
		return StyleDim.Render("→ stable")
	}
}

// Pct renders a utilization percentage colored by load: red above 100,
// yellow under the healthy minimum, green otherwise.
func Pct(v, healthyMin float64) string {
	text := fmt.Sprintf("%.1f%%", v)
	switch {
	case v > 100:
		return StyleRed.Render(text)
	case v > 0 && v < healthyMin:
		return StyleYellow.Render(text)
	case v == 0:
		return StyleDim.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
