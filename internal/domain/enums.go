package domain

type InsightType string

const (
	InsightDominant       InsightType = "dominant"
	InsightUnderdeveloped InsightType = "underdeveloped"
	InsightSynergy        InsightType = "synergy"
	InsightConflict       InsightType = "conflict"
)

// RoleCategory is the stable archetype tag of a role. Unlike Role.Name it is
// never edited by the user, so rules that look for a specific archetype
// match on it.
type RoleCategory string

const (
	CategoryStructureHacking       RoleCategory = "structure_hacking"
	CategoryClaritySecurity        RoleCategory = "clarity_security"
	CategoryClarityEnablement      RoleCategory = "clarity_enablement"
	CategorySimplicityIntelligence RoleCategory = "simplicity_intelligence"
	CategoryHeartClarity           RoleCategory = "heart_clarity"
	CategoryStrategicVision        RoleCategory = "strategic_vision"
	CategoryStableSupport          RoleCategory = "stable_support"
	CategoryIdeaToVision           RoleCategory = "idea_to_vision"
	CategoryMeaningReframing       RoleCategory = "meaning_reframing"
	CategoryPredictivePath         RoleCategory = "predictive_path"
	CategoryThinkingElevation      RoleCategory = "thinking_elevation"
	CategoryPotentialNurturing     RoleCategory = "potential_nurturing"
	CategoryUnconditionalCare      RoleCategory = "unconditional_care"
	CategoryPresenceDeciphering    RoleCategory = "presence_deciphering"
	CategoryMatchmakingInsight     RoleCategory = "matchmaking_insight"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[RoleCategory]bool{
	CategoryStructureHacking: true, CategoryClaritySecurity: true,
	CategoryClarityEnablement: true, CategorySimplicityIntelligence: true,
	CategoryHeartClarity: true, CategoryStrategicVision: true,
	CategoryStableSupport: true, CategoryIdeaToVision: true,
	CategoryMeaningReframing: true, CategoryPredictivePath: true,
	CategoryThinkingElevation: true, CategoryPotentialNurturing: true,
	CategoryUnconditionalCare: true, CategoryPresenceDeciphering: true,
	CategoryMatchmakingInsight: true,
}
