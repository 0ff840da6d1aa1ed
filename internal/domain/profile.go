package domain

import "time"

type Profile struct {
	ID          string
	Name        string
	Description string
	Roles       []Role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the profile. Mutating the copy's roles never
// affects the original.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Roles = CloneRoles(p.Roles)
	return &c
}

// TotalWeight sums the weights of all roles in the profile.
func (p *Profile) TotalWeight() int {
	return TotalWeight(p.Roles)
}

// RoleIndex returns the position of the role with the given ID, or -1.
func (p *Profile) RoleIndex(roleID string) int {
	for i := range p.Roles {
		if p.Roles[i].ID == roleID {
			return i
		}
	}
	return -1
}

// ActiveRoles returns the roles with a non-zero weight, in profile order.
func (p *Profile) ActiveRoles() []Role {
	var out []Role
	for _, r := range p.Roles {
		if r.Weight > 0 {
			out = append(out, r)
		}
	}
	return out
}

// DisplayID returns the first 8 characters of the ID.
func (p *Profile) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// ProfilePatch carries a partial profile update. A nil Roles slice leaves
// the role list untouched; a non-nil one replaces it.
type ProfilePatch struct {
	Name        *string
	Description *string
	Roles       []Role
}

// Apply merges the patch into p in place. Timestamps are the caller's job.
func (patch ProfilePatch) Apply(p *Profile) {
	p.Name = StrFromPtrWithDefault(p.Name, patch.Name)
	p.Description = StrFromPtrWithDefault(p.Description, patch.Description)
	if patch.Roles != nil {
		p.Roles = CloneRoles(patch.Roles)
	}
}

// Envelope is the persisted document: every profile plus the active
// selection.
type Envelope struct {
	Profiles        []*Profile
	ActiveProfileID *string
}
