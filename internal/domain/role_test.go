package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampWeight(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-50, 0},
		{-1, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{101, 100},
		{1 << 20, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampWeight(tt.in), "ClampWeight(%d)", tt.in)
	}
}

func TestRolePatch_Apply_MergesOnlySetFields(t *testing.T) {
	r := Role{ID: "6", Category: CategoryStrategicVision, Name: "To Create Strategic Vision", Essence: "Big-picture patterns", Weight: 10}
	name := "Vision Keeper"
	w := 30

	got := RolePatch{Name: &name, Weight: &w}.Apply(r)

	assert.Equal(t, "Vision Keeper", got.Name)
	assert.Equal(t, 30, got.Weight)
	assert.Equal(t, "Big-picture patterns", got.Essence)
	assert.Equal(t, CategoryStrategicVision, got.Category, "category is never patched")
	assert.Equal(t, "To Create Strategic Vision", r.Name, "original untouched")
}

func TestRolePatch_Apply_ClampsWeight(t *testing.T) {
	high, low := 250, -3
	assert.Equal(t, 100, RolePatch{Weight: &high}.Apply(Role{}).Weight)
	assert.Equal(t, 0, RolePatch{Weight: &low}.Apply(Role{Weight: 40}).Weight)
}

func TestRolePatch_Apply_EmptyStringOverrides(t *testing.T) {
	empty := ""
	got := RolePatch{Method: &empty}.Apply(Role{Method: "Structure Hacking"})
	assert.Equal(t, "", got.Method)
}

func TestRolePatch_IsEmpty(t *testing.T) {
	assert.True(t, RolePatch{}.IsEmpty())
	c := "#fff"
	assert.False(t, RolePatch{Color: &c}.IsEmpty())
}

func TestCloneRoles_Independent(t *testing.T) {
	orig := []Role{{ID: "1", Weight: 5}, {ID: "2", Weight: 7}}
	c := CloneRoles(orig)
	c[0].Weight = 99
	assert.Equal(t, 5, orig[0].Weight)
	assert.Nil(t, CloneRoles(nil))
}

func TestTotalWeight(t *testing.T) {
	assert.Equal(t, 0, TotalWeight(nil))
	assert.Equal(t, 12, TotalWeight([]Role{{Weight: 5}, {Weight: 7}}))
}
