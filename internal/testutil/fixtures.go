package testutil

import (
	"strconv"
	"time"

	"github.com/alexanderramin/rolemix/internal/catalog"
	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/google/uuid"
)

// FixedTime is the timestamp fixtures use unless told otherwise.
var FixedTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// Profile options
type ProfileOption func(*domain.Profile)

func WithProfileID(id string) ProfileOption {
	return func(p *domain.Profile) {
		p.ID = id
	}
}

func WithDescription(desc string) ProfileOption {
	return func(p *domain.Profile) {
		p.Description = desc
	}
}

// WithRoleWeight sets the weight of one catalog role by ID.
func WithRoleWeight(roleID string, weight int) ProfileOption {
	return func(p *domain.Profile) {
		if i := p.RoleIndex(roleID); i >= 0 {
			p.Roles[i].Weight = weight
		}
	}
}

// WithWeights assigns weights to roles in catalog order.
func WithWeights(weights ...int) ProfileOption {
	return func(p *domain.Profile) {
		for i := range p.Roles {
			if i < len(weights) {
				p.Roles[i].Weight = weights[i]
			}
		}
	}
}

func WithTimestamps(created, updated time.Time) ProfileOption {
	return func(p *domain.Profile) {
		p.CreatedAt = created
		p.UpdatedAt = updated
	}
}

// NewTestProfile builds a profile over a fresh catalog copy, all weights zero.
func NewTestProfile(name string, opts ...ProfileOption) *domain.Profile {
	p := &domain.Profile{
		ID:        uuid.New().String(),
		Name:      name,
		Roles:     catalog.Roles(),
		CreatedAt: FixedTime,
		UpdatedAt: FixedTime,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// StepClock returns a clock that starts at start and advances by step on
// every call, so successive timestamps are distinct and predictable.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

// SequentialIDs returns an ID generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
