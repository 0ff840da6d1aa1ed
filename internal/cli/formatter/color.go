package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/charmbracelet/lipgloss"
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

// InsightStyle returns the style used for an insight of the given type.
func InsightStyle(t domain.InsightType) lipgloss.Style {
	switch t {
	case domain.InsightDominant:
		return StyleGreen
	case domain.InsightUnderdeveloped:
		return StyleBlue
	case domain.InsightSynergy:
		return StylePurple
	case domain.InsightConflict:
		return StyleRed
	default:
		return StyleDim
	}
}

// InsightIcon returns a colored marker such as "▲ DOMINANT".
func InsightIcon(t domain.InsightType) string {
	switch t {
	case domain.InsightDominant:
		return StyleGreen.Render("▲ DOMINANT")
	case domain.InsightUnderdeveloped:
		return StyleBlue.Render("▽ EXPLORE")
	case domain.InsightSynergy:
		return StylePurple.Render("◆ SYNERGY")
	case domain.InsightConflict:
		return StyleRed.Render("✖ TENSION")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(t)))
	}
}

// RoleColor converts a role's "hsl(h, s%, l%)" palette entry into a lipgloss
// color. Unparseable values fall back to the foreground color.
func RoleColor(hsl string) lipgloss.TerminalColor {
	hex, ok := HSLToHex(hsl)
	if !ok {
		return ColorFg
	}
	return lipgloss.Color(hex)
}

// RoleStyle returns a foreground style in the role's palette color.
func RoleStyle(hsl string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(RoleColor(hsl))
}

// HSLToHex parses a CSS hsl() string into "#rrggbb".
func HSLToHex(hsl string) (string, bool) {
	var h, s, l float64
	in := strings.ReplaceAll(strings.TrimSpace(hsl), " ", "")
	if _, err := fmt.Sscanf(in, "hsl(%f,%f%%,%f%%)", &h, &s, &l); err != nil {
		return "", false
	}
	s /= 100
	l /= 100
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	to := func(v float64) int { return int(math.Round((v + m) * 255)) }
	return fmt.Sprintf("#%02x%02x%02x", to(r), to(g), to(b)), true
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
