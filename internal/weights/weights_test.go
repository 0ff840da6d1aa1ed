package weights

import (
	"math/rand/v2"
	"testing"

	"github.com/alexanderramin/rolemix/internal/catalog"
	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withWeights(ws ...int) []domain.Role {
	roles := catalog.Roles()
	for i := range roles {
		if i < len(ws) {
			roles[i].Weight = ws[i]
		}
	}
	return roles
}

func TestNormalize_ZeroTotalIsNoop(t *testing.T) {
	roles := withWeights()
	got, ok := Normalize(roles)
	assert.False(t, ok)
	assert.Equal(t, roles, got)
}

func TestNormalize_SingleRoleGetsEverything(t *testing.T) {
	got, ok := Normalize(withWeights(0, 0, 7))
	require.True(t, ok)
	assert.Equal(t, 100, got[2].Weight)
	assert.Equal(t, 100, domain.TotalWeight(got))
}

func TestNormalize_Proportional(t *testing.T) {
	got, ok := Normalize(withWeights(10, 30))
	require.True(t, ok)
	assert.Equal(t, 25, got[0].Weight)
	assert.Equal(t, 75, got[1].Weight)
}

func TestNormalize_RoundsHalfUp(t *testing.T) {
	// 1/8 of 100 = 12.5 -> 13, 7/8 = 87.5 -> 88
	got, ok := Normalize(withWeights(1, 7))
	require.True(t, ok)
	assert.Equal(t, 13, got[0].Weight)
	assert.Equal(t, 88, got[1].Weight)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	roles := withWeights(10, 30)
	_, _ = Normalize(roles)
	assert.Equal(t, 10, roles[0].Weight)
}

// TestNormalize_Invariants_SumWithinRoundingBound property-tests that
// normalized weights land within len(roles) of the target.
func TestNormalize_Invariants_SumWithinRoundingBound(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for trial := 0; trial < 500; trial++ {
		ws := make([]int, catalog.Size)
		for i := range ws {
			if rng.IntN(3) > 0 {
				ws[i] = rng.IntN(101)
			}
		}
		roles := withWeights(ws...)
		got, ok := Normalize(roles)
		if domain.TotalWeight(roles) == 0 {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok)

		sum := domain.TotalWeight(got)
		assert.InDelta(t, Target, sum, float64(catalog.Size),
			"trial %d: sum %d outside rounding bound", trial, sum)
		for _, r := range got {
			assert.GreaterOrEqual(t, r.Weight, 0)
			assert.LessOrEqual(t, r.Weight, 100)
		}
	}
}

func TestSuggestBalance_StaysNearEvenShare(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	base := Target / catalog.Size

	for trial := 0; trial < 100; trial++ {
		got := SuggestBalance(catalog.Roles(), rng)
		require.Len(t, got, catalog.Size)
		for _, r := range got {
			assert.GreaterOrEqual(t, r.Weight, base-SuggestVariation)
			assert.Less(t, r.Weight, base+SuggestVariation)
		}
	}
}

func TestSuggestBalance_ReproducibleWithSeed(t *testing.T) {
	a := SuggestBalance(catalog.Roles(), rand.New(rand.NewPCG(9, 9)))
	b := SuggestBalance(catalog.Roles(), rand.New(rand.NewPCG(9, 9)))
	assert.Equal(t, a, b)
}

func TestSuggestBalance_Empty(t *testing.T) {
	assert.Empty(t, SuggestBalance(nil, NewRand(1)))
}

func TestRandomize_Range(t *testing.T) {
	rng := NewRand(3)
	for trial := 0; trial < 50; trial++ {
		for _, r := range Randomize(catalog.Roles(), rng) {
			assert.GreaterOrEqual(t, r.Weight, StartMin)
			assert.Less(t, r.Weight, StartMin+StartSpan)
		}
	}
}

func TestPercentages(t *testing.T) {
	pcts := Percentages(withWeights(1, 3))
	assert.InDelta(t, 25.0, pcts[0], 0.0001)
	assert.InDelta(t, 75.0, pcts[1], 0.0001)
	assert.Zero(t, pcts[2])

	for _, p := range Percentages(withWeights()) {
		assert.Zero(t, p)
	}
}

func TestNewRand_SameSeedSameSequence(t *testing.T) {
	a, b := NewRand(11), NewRand(11)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
