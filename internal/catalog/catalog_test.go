package catalog

import (
	"testing"

	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_FifteenUniqueArchetypes(t *testing.T) {
	roles := Roles()
	require.Len(t, roles, Size)

	ids := map[string]bool{}
	cats := map[domain.RoleCategory]bool{}
	for i, r := range roles {
		assert.False(t, ids[r.ID], "duplicate id %s", r.ID)
		assert.False(t, cats[r.Category], "duplicate category %s", r.Category)
		ids[r.ID] = true
		cats[r.Category] = true

		assert.True(t, domain.ValidCategories[r.Category], "unknown category %q", r.Category)
		assert.Equal(t, Palette[i], r.Color)
		assert.Zero(t, r.Weight)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Essence)
		assert.NotEmpty(t, r.Method)
		assert.NotEmpty(t, r.CompanyType)
	}
}

func TestRoles_ReturnsIndependentCopies(t *testing.T) {
	a := Roles()
	a[0].Weight = 80
	a[0].Name = "renamed"

	b := Roles()
	assert.Zero(t, b[0].Weight)
	assert.Equal(t, "To Hack Structure", b[0].Name)
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("6")
	require.True(t, ok)
	assert.Equal(t, "To Create Strategic Vision", r.Name)
	assert.Equal(t, "hsl(280, 40%, 50%)", r.Color)

	_, ok = Lookup("99")
	assert.False(t, ok)
}

func TestCategoryForID(t *testing.T) {
	assert.Equal(t, domain.CategoryStableSupport, CategoryForID("7"))
	assert.Equal(t, domain.RoleCategory(""), CategoryForID("nope"))
}
