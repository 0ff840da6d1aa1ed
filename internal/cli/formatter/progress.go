package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderWeightBar renders a slider-like bar for a weight in [0, 100],
// filled in the role's palette color.
func RenderWeightBar(weight int, width int, color string) string {
	if width < 2 {
		width = 2
	}
	w := domain.ClampWeight(weight)
	filled := w * width / domain.MaxWeight
	bar := RoleStyle(color).Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
	return bar
}

// RenderDistribution renders a single stacked bar where each role takes a
// share proportional to its weight. Roles with zero weight are skipped.
func RenderDistribution(roles []domain.Role, width int) string {
	if width < 1 {
		width = 1
	}
	total := domain.TotalWeight(roles)
	if total == 0 {
		return StyleDim.Render(strings.Repeat(emptyBlock, width))
	}

	var b strings.Builder
	used := 0
	var active []domain.Role
	for _, r := range roles {
		if r.Weight > 0 {
			active = append(active, r)
		}
	}
	for i, r := range active {
		n := r.Weight * width / total
		if i == len(active)-1 {
			n = width - used
		}
		if n <= 0 {
			continue
		}
		used += n
		b.WriteString(RoleStyle(r.Color).Render(strings.Repeat(filledBlock, n)))
	}
	return b.String()
}

// RenderTotal renders the "Total: N%" line, highlighted when the weights do
// not add up to 100.
func RenderTotal(total int) string {
	text := fmt.Sprintf("Total: %d%%", total)
	switch {
	case total == 100:
		return StyleGreen.Render(text)
	case total == 0:
		return StyleDim.Render(text)
	default:
		return StyleYellow.Render(text)
	}
}

// Swatch renders a small colored block for a role.
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(RoleColor(color)).Render("●")
}
