// Package insight derives textual observations from a profile's weight
// distribution. Generate is pure: the same roles always give the same
// insights, and nothing here is cached.
package insight

import (
	"slices"
	"strings"

	"github.com/alexanderramin/rolemix/internal/domain"
)

const (
	DominantLimit       = 3
	UnderdevelopedLimit = 4

	// UnderdevelopedBelow is the exclusive weight ceiling for "roles to explore".
	UnderdevelopedBelow = 5
	// SynergyAbove and ConflictAbove are exclusive weight floors.
	SynergyAbove  = 15
	ConflictAbove = 20
)

// matcher identifies one archetype. Category is authoritative; the name
// fragment is only consulted for roles without a category, which happens
// with profiles imported from older exports.
type matcher struct {
	categories   []domain.RoleCategory
	nameFragment string
}

var (
	visionMatcher  = matcher{[]domain.RoleCategory{domain.CategoryStrategicVision}, "Vision"}
	clarityMatcher = matcher{[]domain.RoleCategory{domain.CategoryClaritySecurity, domain.CategoryClarityEnablement}, "Clarity"}
	hackMatcher    = matcher{[]domain.RoleCategory{domain.CategoryStructureHacking}, "Hack"}
	stableMatcher  = matcher{[]domain.RoleCategory{domain.CategoryStableSupport}, "Stable"}
)

func (m matcher) matches(r domain.Role) bool {
	if r.Category == "" {
		return strings.Contains(r.Name, m.nameFragment)
	}
	return slices.Contains(m.categories, r.Category)
}

// Generate evaluates the rules in fixed order: dominant, underdeveloped,
// synergy, conflict. Each rule contributes at most one insight.
func Generate(roles []domain.Role) []domain.Insight {
	sorted := SortByWeight(roles)

	var out []domain.Insight
	if in, ok := dominant(sorted); ok {
		out = append(out, in)
	}
	if in, ok := underdeveloped(sorted); ok {
		out = append(out, in)
	}
	if in, ok := synergy(sorted); ok {
		out = append(out, in)
	}
	if in, ok := conflict(sorted); ok {
		out = append(out, in)
	}
	return out
}

// SortByWeight returns a copy of roles ordered by descending weight. Ties
// keep their original relative order.
func SortByWeight(roles []domain.Role) []domain.Role {
	sorted := domain.CloneRoles(roles)
	slices.SortStableFunc(sorted, func(a, b domain.Role) int {
		return b.Weight - a.Weight
	})
	return sorted
}

func dominant(sorted []domain.Role) (domain.Insight, bool) {
	var names []string
	for _, r := range sorted {
		if r.Weight <= 0 {
			break
		}
		names = append(names, r.Name)
		if len(names) == DominantLimit {
			break
		}
	}
	if len(names) == 0 {
		return domain.Insight{}, false
	}
	return domain.Insight{
		Type:        domain.InsightDominant,
		Title:       "Your Dominant Roles",
		Description: "These roles shape your primary operating mode and influence most decisions.",
		Roles:       names,
	}, true
}

func underdeveloped(sorted []domain.Role) (domain.Insight, bool) {
	var names []string
	for _, r := range sorted {
		if r.Weight < UnderdevelopedBelow {
			names = append(names, r.Name)
		}
	}
	if len(names) == 0 {
		return domain.Insight{}, false
	}
	if len(names) > UnderdevelopedLimit {
		names = names[:UnderdevelopedLimit]
	}
	return domain.Insight{
		Type:        domain.InsightUnderdeveloped,
		Title:       "Roles to Explore",
		Description: "These archetypes are currently dormant. Consider if activating them could bring balance.",
		Roles:       names,
	}, true
}

func synergy(sorted []domain.Role) (domain.Insight, bool) {
	vision, ok := firstAbove(sorted, visionMatcher, SynergyAbove)
	if !ok {
		return domain.Insight{}, false
	}
	clarity, ok := firstAbove(sorted, clarityMatcher, SynergyAbove)
	if !ok {
		return domain.Insight{}, false
	}
	return domain.Insight{
		Type:        domain.InsightSynergy,
		Title:       "Strategic Synergy Detected",
		Description: "Your combination of vision and clarity creates powerful strategic thinking.",
		Roles:       []string{vision.Name, clarity.Name},
	}, true
}

func conflict(sorted []domain.Role) (domain.Insight, bool) {
	hack, ok := firstAbove(sorted, hackMatcher, ConflictAbove)
	if !ok {
		return domain.Insight{}, false
	}
	stable, ok := firstAbove(sorted, stableMatcher, ConflictAbove)
	if !ok {
		return domain.Insight{}, false
	}
	return domain.Insight{
		Type:        domain.InsightConflict,
		Title:       "Tension Point",
		Description: "Fast optimization may conflict with stable support. Consider context-switching strategies.",
		Roles:       []string{hack.Name, stable.Name},
	}, true
}

// firstAbove returns the heaviest role matching m with weight > floor.
func firstAbove(sorted []domain.Role, m matcher, floor int) (domain.Role, bool) {
	for _, r := range sorted {
		if r.Weight > floor && m.matches(r) {
			return r, true
		}
	}
	return domain.Role{}, false
}
