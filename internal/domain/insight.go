package domain

// Insight is a derived observation about a weight distribution. It is
// recomputed on every read and never persisted.
type Insight struct {
	Type        InsightType
	Title       string
	Description string
	Roles       []string
}
