package formatter

import (
	"strings"

	"github.com/alexanderramin/rolemix/internal/domain"
)

// FormatInsights renders insight cards in rule order.
func FormatInsights(insights []domain.Insight) string {
	if len(insights) == 0 {
		return Dim("No insights yet. Adjust some weights to see patterns.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Insights"))
	b.WriteString("\n")
	for i, in := range insights {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(InsightIcon(in.Type))
		b.WriteString("  ")
		b.WriteString(Bold(in.Title))
		b.WriteString("\n")
		b.WriteString("   ")
		b.WriteString(StyleFg.Render(in.Description))
		b.WriteString("\n")
		if len(in.Roles) > 0 {
			b.WriteString("   ")
			b.WriteString(InsightStyle(in.Type).Render(strings.Join(in.Roles, " · ")))
			b.WriteString("\n")
		}
	}
	return b.String()
}
