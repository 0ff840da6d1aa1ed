// Package store owns the set of profiles and the active selection. Every
// mutation is computed on a copy of the state, written through the
// Persister, and only then made visible, so a failed write changes nothing.
package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alexanderramin/rolemix/internal/catalog"
	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/alexanderramin/rolemix/internal/importer"
	"github.com/alexanderramin/rolemix/internal/insight"
	"github.com/alexanderramin/rolemix/internal/weights"
	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoActiveProfile = errors.New("no active profile")
	ErrRoleNotFound    = errors.New("role not found")
)

const (
	DefaultProfileName        = "My Role Mix"
	DefaultProfileDescription = "My personal archetype mix"
	CopySuffix                = " (Copy)"
)

// Persister loads and saves the full envelope. Load reports false when
// nothing has been stored yet.
type Persister interface {
	Load(ctx context.Context) (domain.Envelope, bool, error)
	Save(ctx context.Context, env domain.Envelope) error
}

// Store is the profile state container.
type Store struct {
	mu sync.Mutex

	persister Persister
	observer  Observer
	now       func() time.Time
	newID     func() string
	rng       *rand.Rand

	profiles []*domain.Profile
	activeID string
}

type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how new profile IDs are produced.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithRand sets the random source for first-run weights and balance
// suggestions.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

func WithObserver(obs Observer) Option {
	return func(s *Store) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// New creates an empty store. Call Open to rehydrate persisted state.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		observer:  NoopObserver{},
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = weights.NewRand(0)
	}
	return s
}

// state is the mutable part of the store, copied for every mutation.
type state struct {
	profiles []*domain.Profile
	activeID string
}

func (st *state) clone() *state {
	c := &state{activeID: st.activeID, profiles: make([]*domain.Profile, len(st.profiles))}
	for i, p := range st.profiles {
		c.profiles[i] = p.Clone()
	}
	return c
}

func (st *state) find(id string) (int, *domain.Profile) {
	for i, p := range st.profiles {
		if p.ID == id {
			return i, p
		}
	}
	return -1, nil
}

func (st *state) active() *domain.Profile {
	if st.activeID == "" {
		return nil
	}
	_, p := st.find(st.activeID)
	return p
}

func (st *state) envelope() domain.Envelope {
	env := domain.Envelope{Profiles: st.profiles}
	if st.activeID != "" {
		id := st.activeID
		env.ActiveProfileID = &id
	}
	return env
}

// errNoChange aborts a mutation without saving and without failing.
var errNoChange = errors.New("no change")

// mutate runs fn against a copy of the state, persists the result and swaps
// it in. Must be called with s.mu held.
func (s *Store) mutate(ctx context.Context, name string, fields map[string]any, fn func(st *state) error) error {
	started := time.Now()
	next := (&state{profiles: s.profiles, activeID: s.activeID}).clone()

	err := fn(next)
	if errors.Is(err, errNoChange) {
		s.observe(ctx, name, started, fields, nil)
		return nil
	}
	if err == nil {
		if saveErr := s.persister.Save(ctx, next.envelope()); saveErr != nil {
			err = fmt.Errorf("saving profiles: %w", saveErr)
		}
	}
	s.observe(ctx, name, started, fields, err)
	if err != nil {
		return err
	}

	s.profiles = next.profiles
	s.activeID = next.activeID
	return nil
}

func (s *Store) observe(ctx context.Context, name string, started time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: started,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// Open loads persisted state. On first run, or when the stored envelope
// holds no profiles, it seeds one profile with randomized weights and saves
// it.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	env, found, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}
	if found && len(env.Profiles) > 0 {
		s.profiles = make([]*domain.Profile, 0, len(env.Profiles))
		for _, p := range env.Profiles {
			if p != nil {
				s.profiles = append(s.profiles, p.Clone())
			}
		}
		s.activeID = ""
		if env.ActiveProfileID != nil {
			s.activeID = *env.ActiveProfileID
		}
		return nil
	}

	return s.mutate(ctx, "open_first_run", nil, func(st *state) error {
		now := s.now()
		p := &domain.Profile{
			ID:          s.newID(),
			Name:        DefaultProfileName,
			Description: DefaultProfileDescription,
			Roles:       weights.Randomize(catalog.Roles(), s.rng),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		st.profiles = []*domain.Profile{p}
		st.activeID = p.ID
		return nil
	})
}

// Profiles returns every profile in creation order.
func (s *Store) Profiles() []*domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Profile, len(s.profiles))
	for i, p := range s.profiles {
		out[i] = p.Clone()
	}
	return out
}

// Profile returns the profile with the given ID.
func (s *Store) Profile(id string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
}

// ActiveID returns the active profile ID, or "" when none is selected.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Active returns the active profile, or nil when the active ID is unset or
// does not match any profile.
func (s *Store) Active() *domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := state{profiles: s.profiles, activeID: s.activeID}
	return st.active().Clone()
}

// Select makes id the active profile. The ID is not checked; an unknown ID
// leaves the store with no usable active profile.
func (s *Store) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutate(ctx, "select_profile", map[string]any{"profile_id": id}, func(st *state) error {
		st.activeID = id
		return nil
	})
}

// Create adds a profile built from a fresh catalog copy and makes it active.
func (s *Store) Create(ctx context.Context, name, description string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := &domain.Profile{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		Roles:       catalog.Roles(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.mutate(ctx, "create_profile", map[string]any{"profile_id": p.ID}, func(st *state) error {
		st.profiles = append(st.profiles, p.Clone())
		st.activeID = p.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Duplicate copies a profile, weights included, under a new ID and a name
// suffixed with " (Copy)". The copy becomes active.
func (s *Store) Duplicate(ctx context.Context, id string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var dup *domain.Profile
	err := s.mutate(ctx, "duplicate_profile", map[string]any{"source_id": id}, func(st *state) error {
		_, src := st.find(id)
		if src == nil {
			return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
		}
		now := s.now()
		dup = src.Clone()
		dup.ID = s.newID()
		dup.Name = src.Name + CopySuffix
		dup.CreatedAt = now
		dup.UpdatedAt = now
		st.profiles = append(st.profiles, dup.Clone())
		st.activeID = dup.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dup, nil
}

// Delete removes a profile. When it was active, the first remaining profile
// becomes active, or none if the list is now empty. Unknown IDs are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutate(ctx, "delete_profile", map[string]any{"profile_id": id}, func(st *state) error {
		i, _ := st.find(id)
		if i < 0 {
			return errNoChange
		}
		st.profiles = append(st.profiles[:i], st.profiles[i+1:]...)
		if st.activeID == id {
			st.activeID = ""
			if len(st.profiles) > 0 {
				st.activeID = st.profiles[0].ID
			}
		}
		return nil
	})
}

// UpdateProfile merges patch into the profile and refreshes UpdatedAt.
// Weights in a replacement role list are clamped.
func (s *Store) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutate(ctx, "update_profile", map[string]any{"profile_id": id}, func(st *state) error {
		_, p := st.find(id)
		if p == nil {
			return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
		}
		patch.Apply(p)
		if patch.Roles != nil {
			for i := range p.Roles {
				p.Roles[i].Weight = domain.ClampWeight(p.Roles[i].Weight)
			}
		}
		p.UpdatedAt = s.now()
		return nil
	})
}

// UpdateRole merges patch into a role of the active profile.
func (s *Store) UpdateRole(ctx context.Context, roleID string, patch domain.RolePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutate(ctx, "update_role", map[string]any{"role_id": roleID}, func(st *state) error {
		p := st.active()
		if p == nil {
			return ErrNoActiveProfile
		}
		i := p.RoleIndex(roleID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrRoleNotFound, roleID)
		}
		p.Roles[i] = patch.Apply(p.Roles[i])
		p.UpdatedAt = s.now()
		return nil
	})
}

// SetWeight sets one role weight on the active profile, clamped to [0, 100].
func (s *Store) SetWeight(ctx context.Context, roleID string, weight int) error {
	w := domain.ClampWeight(weight)
	return s.UpdateRole(ctx, roleID, domain.RolePatch{Weight: &w})
}

// AdjustWeight moves one role weight on the active profile by delta, reading
// the stored value under the lock. A step that clamps to the current weight
// saves nothing.
func (s *Store) AdjustWeight(ctx context.Context, roleID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutate(ctx, "update_role", map[string]any{"role_id": roleID, "delta": delta}, func(st *state) error {
		p := st.active()
		if p == nil {
			return ErrNoActiveProfile
		}
		i := p.RoleIndex(roleID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrRoleNotFound, roleID)
		}
		w := domain.ClampWeight(p.Roles[i].Weight + delta)
		if w == p.Roles[i].Weight {
			return errNoChange
		}
		p.Roles[i].Weight = w
		p.UpdatedAt = s.now()
		return nil
	})
}

// Normalize rescales the active profile's weights to sum to 100. It returns
// false, without saving, when the total weight is zero.
func (s *Store) Normalize(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	err := s.mutate(ctx, "normalize_weights", nil, func(st *state) error {
		p := st.active()
		if p == nil {
			return ErrNoActiveProfile
		}
		roles, ok := weights.Normalize(p.Roles)
		if !ok {
			return errNoChange
		}
		p.Roles = roles
		p.UpdatedAt = s.now()
		changed = true
		return nil
	})
	return changed, err
}

// SuggestBalance overwrites the active profile's weights with an even
// spread plus random jitter.
func (s *Store) SuggestBalance(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutate(ctx, "suggest_balance", nil, func(st *state) error {
		p := st.active()
		if p == nil {
			return ErrNoActiveProfile
		}
		p.Roles = weights.SuggestBalance(p.Roles, s.rng)
		p.UpdatedAt = s.now()
		return nil
	})
}

// Insights derives insights for the active profile. Nothing is cached.
func (s *Store) Insights() []domain.Insight {
	p := s.Active()
	if p == nil {
		return nil
	}
	return insight.Generate(p.Roles)
}

// Export renders the profile as pretty-printed JSON.
func (s *Store) Export(id string) (string, error) {
	p, err := s.Profile(id)
	if err != nil {
		return "", err
	}
	data, err := importer.MarshalProfile(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportResult holds the outcome of a profile import.
type ImportResult struct {
	Profile  *domain.Profile
	Warnings []error
}

// Import parses an exported profile, gives it a new ID and fresh
// timestamps, appends it and makes it active. On any parse failure the
// store is left unchanged.
func (s *Store) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	schema, err := importer.ParseProfileSchema(data)
	if err != nil {
		return nil, err
	}
	warnings := importer.ValidateProfileSchema(schema)
	p := importer.ToDomain(schema)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p.ID = s.newID()
	p.CreatedAt = now
	p.UpdatedAt = now

	err = s.mutate(ctx, "import_profile", map[string]any{"profile_id": p.ID, "warnings": len(warnings)}, func(st *state) error {
		st.profiles = append(st.profiles, p.Clone())
		st.activeID = p.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ImportResult{Profile: p, Warnings: warnings}, nil
}
