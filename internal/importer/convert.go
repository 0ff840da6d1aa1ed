package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/rolemix/internal/catalog"
	"github.com/alexanderramin/rolemix/internal/domain"
)

// TimestampLayout is how profile timestamps are written.
const TimestampLayout = time.RFC3339Nano

// ToDomain converts a decoded schema into a profile. Missing categories are
// backfilled from the catalog by role ID and weights are clamped. Timestamps
// that do not parse are left zero.
func ToDomain(s *ProfileSchema) *domain.Profile {
	p := &domain.Profile{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   parseTimestamp(s.CreatedAt),
		UpdatedAt:   parseTimestamp(s.UpdatedAt),
	}
	if s.Roles != nil {
		p.Roles = make([]domain.Role, len(s.Roles))
	}
	for i, r := range s.Roles {
		category := domain.RoleCategory(r.Category)
		if category == "" {
			category = catalog.CategoryForID(r.ID)
		}
		p.Roles[i] = domain.Role{
			ID:          r.ID,
			Category:    category,
			Name:        r.Name,
			Essence:     r.Essence,
			Method:      r.Method,
			CompanyType: r.CompanyType,
			Weight:      clampWireWeight(r.Weight),
			Color:       r.Color,
		}
	}
	return p
}

// FromDomain converts a profile into its wire shape.
func FromDomain(p *domain.Profile) ProfileSchema {
	s := ProfileSchema{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Roles:       make([]RoleSchema, len(p.Roles)),
		CreatedAt:   formatTimestamp(p.CreatedAt),
		UpdatedAt:   formatTimestamp(p.UpdatedAt),
	}
	for i, r := range p.Roles {
		s.Roles[i] = RoleSchema{
			ID:          r.ID,
			Category:    string(r.Category),
			Name:        r.Name,
			Essence:     r.Essence,
			Method:      r.Method,
			CompanyType: r.CompanyType,
			Weight:      float64(r.Weight),
			Color:       r.Color,
		}
	}
	return s
}

// MarshalProfile renders a profile as pretty-printed JSON.
func MarshalProfile(p *domain.Profile) ([]byte, error) {
	data, err := json.MarshalIndent(FromDomain(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return data, nil
}

// MarshalEnvelope renders the persisted document in compact form.
func MarshalEnvelope(env domain.Envelope) ([]byte, error) {
	s := EnvelopeSchema{
		Profiles:        make([]ProfileSchema, len(env.Profiles)),
		ActiveProfileID: env.ActiveProfileID,
	}
	for i, p := range env.Profiles {
		s.Profiles[i] = FromDomain(p)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}
	return data, nil
}

// UnmarshalEnvelope decodes a persisted document. An empty active ID is
// treated as unset.
func UnmarshalEnvelope(data []byte) (domain.Envelope, error) {
	s, err := ParseEnvelopeSchema(data)
	if err != nil {
		return domain.Envelope{}, err
	}
	env := domain.Envelope{Profiles: make([]*domain.Profile, len(s.Profiles))}
	for i := range s.Profiles {
		env.Profiles[i] = ToDomain(&s.Profiles[i])
	}
	if s.ActiveProfileID != nil && *s.ActiveProfileID != "" {
		id := *s.ActiveProfileID
		env.ActiveProfileID = &id
	}
	return env, nil
}

// clampWireWeight clamps before converting so out-of-range floats never reach int.
func clampWireWeight(w float64) int {
	if math.IsNaN(w) {
		return domain.MinWeight
	}
	w = math.Max(domain.MinWeight, math.Min(domain.MaxWeight, math.Round(w)))
	return int(w)
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}
