package domain

const (
	MinWeight = 0
	MaxWeight = 100
)

// Role is one archetype inside a profile. The set of roles in a profile is
// fixed at creation; only field values and Weight change afterwards.
type Role struct {
	ID          string
	Category    RoleCategory
	Name        string
	Essence     string
	Method      string
	CompanyType string
	Weight      int
	Color       string
}

// ClampWeight forces w into [MinWeight, MaxWeight].
func ClampWeight(w int) int {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}

// RolePatch carries a partial role update. Nil fields are left untouched.
type RolePatch struct {
	Name        *string
	Essence     *string
	Method      *string
	CompanyType *string
	Color       *string
	Weight      *int
}

// IsEmpty reports whether the patch changes nothing.
func (p RolePatch) IsEmpty() bool {
	return p.Name == nil && p.Essence == nil && p.Method == nil &&
		p.CompanyType == nil && p.Color == nil && p.Weight == nil
}

// Apply returns a copy of r with the patch merged in. Weight is clamped.
func (p RolePatch) Apply(r Role) Role {
	r.Name = StrFromPtrWithDefault(r.Name, p.Name)
	r.Essence = StrFromPtrWithDefault(r.Essence, p.Essence)
	r.Method = StrFromPtrWithDefault(r.Method, p.Method)
	r.CompanyType = StrFromPtrWithDefault(r.CompanyType, p.CompanyType)
	r.Color = StrFromPtrWithDefault(r.Color, p.Color)
	r.Weight = ClampWeight(IntFromPtrWithDefault(r.Weight, p.Weight))
	return r
}

// CloneRoles returns an independent copy of roles.
func CloneRoles(roles []Role) []Role {
	if roles == nil {
		return nil
	}
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// TotalWeight sums all role weights.
func TotalWeight(roles []Role) int {
	total := 0
	for _, r := range roles {
		total += r.Weight
	}
	return total
}
