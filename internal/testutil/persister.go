package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/rolemix/internal/domain"
)

// MapPersister is an in-memory envelope store keyed by a single slot, the
// test stand-in for local storage. Stored envelopes are deep-copied in both
// directions so tests can't alias store state.
type MapPersister struct {
	mu    sync.Mutex
	slots map[string]domain.Envelope
	Saves int
}

// NewMapPersister creates an empty MapPersister.
func NewMapPersister() *MapPersister {
	return &MapPersister{slots: make(map[string]domain.Envelope)}
}

const slotKey = "profiles"

func (m *MapPersister) Load(context.Context) (domain.Envelope, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	env, ok := m.slots[slotKey]
	if !ok {
		return domain.Envelope{}, false, nil
	}
	return cloneEnvelope(env), true, nil
}

func (m *MapPersister) Save(_ context.Context, env domain.Envelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slotKey] = cloneEnvelope(env)
	m.Saves++
	return nil
}

// Seed stores env as if a previous session had saved it.
func (m *MapPersister) Seed(env domain.Envelope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slotKey] = cloneEnvelope(env)
}

// Stored returns the last saved envelope.
func (m *MapPersister) Stored() (domain.Envelope, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	env, ok := m.slots[slotKey]
	return cloneEnvelope(env), ok
}

// FailOnNthSave wraps a persister and returns Err from the Nth Save call
// (counted from 1). Other calls pass through. This lets tests check that a
// failed write leaves in-memory state untouched.
type FailOnNthSave struct {
	Next interface {
		Load(ctx context.Context) (domain.Envelope, bool, error)
		Save(ctx context.Context, env domain.Envelope) error
	}
	FailOn int32
	Err    error

	count atomic.Int32
}

func (f *FailOnNthSave) Load(ctx context.Context) (domain.Envelope, bool, error) {
	return f.Next.Load(ctx)
}

func (f *FailOnNthSave) Save(ctx context.Context, env domain.Envelope) error {
	if f.count.Add(1) == f.FailOn {
		return f.Err
	}
	return f.Next.Save(ctx, env)
}

func cloneEnvelope(env domain.Envelope) domain.Envelope {
	out := domain.Envelope{}
	if env.Profiles != nil {
		out.Profiles = make([]*domain.Profile, len(env.Profiles))
		for i, p := range env.Profiles {
			out.Profiles[i] = p.Clone()
		}
	}
	if env.ActiveProfileID != nil {
		id := *env.ActiveProfileID
		out.ActiveProfileID = &id
	}
	return out
}
