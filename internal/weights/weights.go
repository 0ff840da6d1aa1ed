// Package weights holds the arithmetic applied to a profile's role weights:
// normalization, balance suggestions and first-run randomization.
package weights

import (
	"math"
	"math/rand/v2"

	"github.com/alexanderramin/rolemix/internal/domain"
)

const (
	// Target is the sum Normalize rescales to.
	Target = 100

	// SuggestVariation bounds the jitter SuggestBalance adds around the even
	// share: offsets fall in [-SuggestVariation, SuggestVariation-1].
	SuggestVariation = 5

	// StartMin and StartSpan define first-run weights in [StartMin, StartMin+StartSpan-1].
	StartMin  = 5
	StartSpan = 30
)

// Normalize rescales weights proportionally so they sum to Target, rounding
// each share half-up. It returns the new roles and true, or the input
// unchanged and false when the total weight is zero.
//
// Rounding means the result can be off Target by at most len(roles)/2.
func Normalize(roles []domain.Role) ([]domain.Role, bool) {
	total := domain.TotalWeight(roles)
	if total == 0 {
		return roles, false
	}
	out := domain.CloneRoles(roles)
	for i := range out {
		share := float64(out[i].Weight) / float64(total) * Target
		out[i].Weight = domain.ClampWeight(roundHalfUp(share))
	}
	return out, true
}

// SuggestBalance spreads weight evenly with some jitter: each role gets
// floor(Target/len) plus an offset drawn from rng, clamped to the weight
// range. The result is not forced to sum to Target.
func SuggestBalance(roles []domain.Role, rng *rand.Rand) []domain.Role {
	if len(roles) == 0 {
		return roles
	}
	base := Target / len(roles)
	out := domain.CloneRoles(roles)
	for i := range out {
		offset := rng.IntN(SuggestVariation*2) - SuggestVariation
		out[i].Weight = domain.ClampWeight(base + offset)
	}
	return out
}

// Randomize assigns every role a starting weight in [StartMin, StartMin+StartSpan-1].
func Randomize(roles []domain.Role, rng *rand.Rand) []domain.Role {
	out := domain.CloneRoles(roles)
	for i := range out {
		out[i].Weight = StartMin + rng.IntN(StartSpan)
	}
	return out
}

// Percentages returns each role's share of the total weight in percent, in
// role order. All zeros when the total is zero.
func Percentages(roles []domain.Role) []float64 {
	out := make([]float64, len(roles))
	total := domain.TotalWeight(roles)
	if total == 0 {
		return out
	}
	for i, r := range roles {
		out[i] = float64(r.Weight) / float64(total) * 100
	}
	return out
}

// NewRand returns a seeded source. A zero seed draws one from the runtime.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
