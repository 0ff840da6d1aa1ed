// Package catalog holds the fixed set of fifteen archetypes every profile is
// built from.
package catalog

import "github.com/alexanderramin/rolemix/internal/domain"

// Size is the number of archetypes in every profile.
const Size = 15

// Palette is the fixed color assignment, one entry per archetype in order.
var Palette = [Size]string{
	"hsl(168, 45%, 32%)", // teal
	"hsl(15, 65%, 55%)",  // terracotta
	"hsl(145, 35%, 45%)", // sage
	"hsl(35, 50%, 55%)",  // sand
	"hsl(200, 45%, 45%)", // blue
	"hsl(280, 40%, 50%)", // purple
	"hsl(45, 60%, 50%)",  // gold
	"hsl(0, 55%, 50%)",   // red
	"hsl(180, 40%, 40%)", // cyan
	"hsl(320, 45%, 50%)", // pink
	"hsl(90, 40%, 45%)",  // green
	"hsl(25, 55%, 50%)",  // orange
	"hsl(220, 50%, 50%)", // indigo
	"hsl(60, 50%, 45%)",  // lime
	"hsl(340, 50%, 50%)", // rose
}

var archetypes = [Size]domain.Role{
	{ID: "1", Category: domain.CategoryStructureHacking, Name: "To Hack Structure", Essence: "Fast optimization", Method: "Structure Hacking", CompanyType: "Process studio"},
	{ID: "2", Category: domain.CategoryClaritySecurity, Name: "To Secure Clarity", Essence: "Risk insight", Method: "Clarity & Security", CompanyType: "Risk consulting"},
	{ID: "3", Category: domain.CategoryClarityEnablement, Name: "To Enable Clarity", Essence: "Planning", Method: "Clarity Enablement", CompanyType: "Planning agency"},
	{ID: "4", Category: domain.CategorySimplicityIntelligence, Name: "To Simplify Intelligence", Essence: "Make complexity simple", Method: "Simplicity Intelligence", CompanyType: "Simplicity studio"},
	{ID: "5", Category: domain.CategoryHeartClarity, Name: "To Hold Space for Truth", Essence: "Emotional depth", Method: "Heart-Clarity", CompanyType: "Emotional clarity studio"},
	{ID: "6", Category: domain.CategoryStrategicVision, Name: "To Create Strategic Vision", Essence: "Big-picture patterns", Method: "Strategic Vision", CompanyType: "Vision consulting"},
	{ID: "7", Category: domain.CategoryStableSupport, Name: "To Create Stable Support", Essence: "Calm support", Method: "Stable Support", CompanyType: "Support consultancy"},
	{ID: "8", Category: domain.CategoryIdeaToVision, Name: "To Make Ideas Visible", Essence: "Abstract → visual", Method: "Idea-to-Vision", CompanyType: "Concept studio"},
	{ID: "9", Category: domain.CategoryMeaningReframing, Name: "To Reveal Meaning", Essence: "Hidden links", Method: "Meaning-Reframing", CompanyType: "Systemic clarity lab"},
	{ID: "10", Category: domain.CategoryPredictivePath, Name: "To Predict the Path", Essence: "Feasibility + shortcuts", Method: "Predictive Path", CompanyType: "Strategy lab"},
	{ID: "11", Category: domain.CategoryThinkingElevation, Name: "To Elevate Thinking", Essence: "Meta-cognition", Method: "Thinking Elevation", CompanyType: "Cognitive institute"},
	{ID: "12", Category: domain.CategoryPotentialNurturing, Name: "To Nurture Potential", Essence: "Inspire & empower", Method: "Potential-Nurturing", CompanyType: "Empowerment studio"},
	{ID: "13", Category: domain.CategoryUnconditionalCare, Name: "To Care Unconditionally", Essence: "Ethical love", Method: "Unconditional Care", CompanyType: "Life guidance studio"},
	{ID: "14", Category: domain.CategoryPresenceDeciphering, Name: "To Decipher Presence", Essence: "Embodied clarity", Method: "Presence-Deciphering", CompanyType: "Presence lab"},
	{ID: "15", Category: domain.CategoryMatchmakingInsight, Name: "To Connect People", Essence: "Matchmaking intuition", Method: "Matchmaking Insight", CompanyType: "Connector hub"},
}

var byID = func() map[string]int {
	m := make(map[string]int, Size)
	for i, r := range archetypes {
		m[r.ID] = i
	}
	return m
}()

// Roles returns a fresh copy of the catalog with every weight at its
// default of zero. Callers own the returned slice.
func Roles() []domain.Role {
	out := make([]domain.Role, Size)
	for i, r := range archetypes {
		r.Color = Palette[i]
		out[i] = r
	}
	return out
}

// Lookup returns the catalog definition for a role ID.
func Lookup(id string) (domain.Role, bool) {
	i, ok := byID[id]
	if !ok {
		return domain.Role{}, false
	}
	r := archetypes[i]
	r.Color = Palette[i]
	return r, true
}

// CategoryForID returns the category of the catalog role with the given ID,
// or "" when the ID is not a catalog ID.
func CategoryForID(id string) domain.RoleCategory {
	r, ok := Lookup(id)
	if !ok {
		return ""
	}
	return r.Category
}
