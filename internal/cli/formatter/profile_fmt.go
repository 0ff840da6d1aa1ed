package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/alexanderramin/rolemix/internal/weights"
)

const barWidth = 20

// FormatProfileList renders all profiles with the active one marked.
func FormatProfileList(profiles []*domain.Profile, activeID string) string {
	if len(profiles) == 0 {
		return Dim("No profiles. Create one with 'rolemix profile create'.") + "\n"
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		marker := " "
		name := p.Name
		if p.ID == activeID {
			marker = StyleGreen.Render("●")
			name = Bold(name)
		}
		rows = append(rows, []string{
			marker,
			Dim(p.DisplayID()),
			name,
			strconv.Itoa(p.TotalWeight()) + "%",
			strconv.Itoa(len(p.ActiveRoles())),
			Dim(HumanTimestamp(p.UpdatedAt)),
		})
	}
	cols := []Column{
		{Title: ""},
		{Title: "ID"},
		{Title: "NAME"},
		{Title: "TOTAL", Right: true},
		{Title: "ACTIVE", Right: true},
		{Title: "UPDATED"},
	}
	return Header("Profiles") + "\n" + RenderTable(cols, rows)
}

// FormatProfile renders a profile header, its distribution bar and the role
// table with weights and shares.
func FormatProfile(p *domain.Profile) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(StyleFg.Render(p.Description))
		b.WriteString("\n")
	}
	b.WriteString(Dim(fmt.Sprintf("id %s · created %s · updated %s",
		p.ID, HumanTimestamp(p.CreatedAt), HumanTimestamp(p.UpdatedAt))))
	b.WriteString("\n\n")

	b.WriteString(RenderDistribution(p.Roles, 45))
	b.WriteString("\n")
	b.WriteString(RenderTotal(p.TotalWeight()))
	b.WriteString("\n\n")

	b.WriteString(FormatRoleTable(p.Roles, -1))
	return b.String()
}

// FormatRoleTable renders the role list. The role at cursor, if any, is
// highlighted.
func FormatRoleTable(roles []domain.Role, cursor int) string {
	shares := weights.Percentages(roles)
	rows := make([][]string, 0, len(roles))
	for i, r := range roles {
		name := RoleStyle(r.Color).Render(r.Name)
		pointer := " "
		if i == cursor {
			pointer = StyleHeader.Render("›")
			name = Bold(r.Name)
		}
		rows = append(rows, []string{
			pointer,
			Dim(r.ID),
			name,
			RenderWeightBar(r.Weight, barWidth, r.Color),
			strconv.Itoa(r.Weight),
			fmt.Sprintf("%.1f%%", shares[i]),
		})
	}
	cols := []Column{
		{Title: ""},
		{Title: "#", Right: true},
		{Title: "ROLE"},
		{Title: "WEIGHT"},
		{Title: "", Right: true},
		{Title: "SHARE", Right: true},
	}
	return RenderTable(cols, rows)
}

// FormatRole renders every field of a single role.
func FormatRole(r domain.Role) string {
	lines := []string{
		fmt.Sprintf("%s %s", Swatch(r.Color), Bold(r.Name)),
		"",
		fmt.Sprintf("%s %s", Dim("Essence:     "), r.Essence),
		fmt.Sprintf("%s %s", Dim("Method:      "), r.Method),
		fmt.Sprintf("%s %s", Dim("Company type:"), r.CompanyType),
		fmt.Sprintf("%s %s %d", Dim("Weight:      "), RenderWeightBar(r.Weight, barWidth, r.Color), r.Weight),
	}
	return RenderBox("Role "+r.ID, strings.Join(lines, "\n"))
}
