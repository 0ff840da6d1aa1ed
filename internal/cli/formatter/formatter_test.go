package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/rolemix/internal/catalog"
	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"hsl(0, 100%, 50%)", "#ff0000", true},
		{"hsl(120, 100%, 50%)", "#00ff00", true},
		{"hsl(240,100%,50%)", "#0000ff", true},
		{"hsl(0, 0%, 100%)", "#ffffff", true},
		{"hsl(168, 45%, 32%)", "#2d7668", true},
		{"#ff0000", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := HSLToHex(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogPaletteParses(t *testing.T) {
	for _, c := range catalog.Palette {
		_, ok := HSLToHex(c)
		assert.True(t, ok, c)
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable(
		[]Column{{Title: "NAME"}, {Title: "W", Right: true}},
		[][]string{{"alpha", "5"}, {"b", "100"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME     W", lines[0])
	assert.Equal(t, "alpha    5", lines[2])
	assert.Equal(t, "b      100", lines[3])
}

func TestRenderTable_NoColumns(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderWeightBar(t *testing.T) {
	tests := []struct {
		weight int
		filled int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		bar := stripANSI(RenderWeightBar(tt.weight, 20, "hsl(0, 100%, 50%)"))
		assert.Equal(t, tt.filled, strings.Count(bar, filledBlock), "weight %d", tt.weight)
		assert.Equal(t, 20-tt.filled, strings.Count(bar, emptyBlock), "weight %d", tt.weight)
	}
}

func TestRenderDistribution_FillsWidth(t *testing.T) {
	roles := catalog.Roles()
	roles[0].Weight = 30
	roles[5].Weight = 10
	roles[14].Weight = 7

	bar := stripANSI(RenderDistribution(roles, 40))
	assert.Equal(t, 40, strings.Count(bar, filledBlock))
}

func TestRenderDistribution_ZeroTotal(t *testing.T) {
	bar := stripANSI(RenderDistribution(catalog.Roles(), 10))
	assert.Equal(t, strings.Repeat(emptyBlock, 10), bar)
}

func TestRenderTotal(t *testing.T) {
	assert.Equal(t, "Total: 100%", stripANSI(RenderTotal(100)))
	assert.Equal(t, "Total: 87%", stripANSI(RenderTotal(87)))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "unknown", HumanTimestampFrom(time.Time{}, now))
	assert.Equal(t, "3 hours ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "To Hack…", Truncate("To Hack Structure", 8))
}

func TestFormatProfileList_MarksActive(t *testing.T) {
	a := &domain.Profile{ID: "aaaaaaaa-1111", Name: "Alpha", Roles: catalog.Roles()}
	b := &domain.Profile{ID: "bbbbbbbb-2222", Name: "Beta", Roles: catalog.Roles()}
	b.Roles[0].Weight = 40

	out := stripANSI(FormatProfileList([]*domain.Profile{a, b}, "bbbbbbbb-2222"))

	assert.Contains(t, out, "PROFILES")
	assert.Contains(t, out, "aaaaaaaa")
	assert.NotContains(t, out, "aaaaaaaa-1111")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Beta") {
			assert.True(t, strings.HasPrefix(line, "●"), line)
			assert.Contains(t, line, "40%")
		}
	}
}

func TestFormatProfileList_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatProfileList(nil, "")), "No profiles")
}

func TestFormatProfile(t *testing.T) {
	p := &domain.Profile{ID: "p-1", Name: "My Role Mix", Description: "My personal archetype mix", Roles: catalog.Roles()}
	p.Roles[1].Weight = 25
	p.Roles[2].Weight = 25

	out := stripANSI(FormatProfile(p))

	assert.Contains(t, out, "MY ROLE MIX")
	assert.Contains(t, out, "My personal archetype mix")
	assert.Contains(t, out, "Total: 50%")
	assert.Contains(t, out, "To Secure Clarity")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "created unknown")
}

func TestFormatRole(t *testing.T) {
	r, ok := catalog.Lookup("9")
	require.True(t, ok)
	r.Weight = 12

	out := stripANSI(FormatRole(r))

	assert.Contains(t, out, "ROLE 9")
	assert.Contains(t, out, "To Reveal Meaning")
	assert.Contains(t, out, "Systemic clarity lab")
	assert.Contains(t, out, " 12")
}

func TestFormatInsights(t *testing.T) {
	out := stripANSI(FormatInsights([]domain.Insight{
		{Type: domain.InsightDominant, Title: "Your Dominant Roles", Description: "These roles shape how you contribute most", Roles: []string{"A", "B"}},
		{Type: domain.InsightConflict, Title: "Tension Point", Description: "Structure hacking and stable support pull in different directions"},
	}))

	assert.Contains(t, out, "▲ DOMINANT  Your Dominant Roles")
	assert.Contains(t, out, "A · B")
	assert.Contains(t, out, "✖ TENSION  Tension Point")
}

func TestFormatInsights_Empty(t *testing.T) {
	assert.Contains(t, FormatInsights(nil), "No insights yet")
}
