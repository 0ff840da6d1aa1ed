package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *Profile {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &Profile{
		ID:          "550e8400-e29b-41d4-a716-446655440000",
		Name:        "Work Mode",
		Description: "weekday mix",
		Roles: []Role{
			{ID: "1", Name: "To Hack Structure", Weight: 25},
			{ID: "2", Name: "To Secure Clarity", Weight: 0},
			{ID: "3", Name: "To Enable Clarity", Weight: 10},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProfile_Clone_DeepCopiesRoles(t *testing.T) {
	p := sampleProfile()
	c := p.Clone()

	c.Roles[0].Weight = 1
	c.Name = "Other"

	assert.Equal(t, 25, p.Roles[0].Weight)
	assert.Equal(t, "Work Mode", p.Name)
	assert.Equal(t, p.CreatedAt, c.CreatedAt)
}

func TestProfile_Clone_Nil(t *testing.T) {
	var p *Profile
	assert.Nil(t, p.Clone())
}

func TestProfile_TotalWeight(t *testing.T) {
	assert.Equal(t, 35, sampleProfile().TotalWeight())
}

func TestProfile_RoleIndex(t *testing.T) {
	p := sampleProfile()
	assert.Equal(t, 2, p.RoleIndex("3"))
	assert.Equal(t, -1, p.RoleIndex("42"))
}

func TestProfile_ActiveRoles(t *testing.T) {
	active := sampleProfile().ActiveRoles()
	require.Len(t, active, 2)
	assert.Equal(t, "1", active[0].ID)
	assert.Equal(t, "3", active[1].ID)
}

func TestProfile_DisplayID(t *testing.T) {
	assert.Equal(t, "550e8400", sampleProfile().DisplayID())
	assert.Equal(t, "abc", (&Profile{ID: "abc"}).DisplayID())
}

func TestProfilePatch_Apply(t *testing.T) {
	p := sampleProfile()
	name := "Weekend Mode"
	roles := []Role{{ID: "1", Weight: 50}}

	ProfilePatch{Name: &name, Roles: roles}.Apply(p)

	assert.Equal(t, "Weekend Mode", p.Name)
	assert.Equal(t, "weekday mix", p.Description)
	require.Len(t, p.Roles, 1)

	roles[0].Weight = 0
	assert.Equal(t, 50, p.Roles[0].Weight, "patch roles are copied")
}

func TestProfilePatch_Apply_NilRolesKeepsList(t *testing.T) {
	p := sampleProfile()
	desc := ""
	ProfilePatch{Description: &desc}.Apply(p)
	assert.Equal(t, "", p.Description)
	assert.Len(t, p.Roles, 3)
}
