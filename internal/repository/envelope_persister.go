package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/alexanderramin/rolemix/internal/importer"
)

// DefaultStorageKey is the key the profile envelope lives under.
const DefaultStorageKey = "natural-roles-profiles"

// EnvelopePersister stores the whole profile envelope as one JSON value in a
// KeyValueStore.
type EnvelopePersister struct {
	kv  KeyValueStore
	key string
}

// NewEnvelopePersister creates a persister writing under key. An empty key
// falls back to DefaultStorageKey.
func NewEnvelopePersister(kv KeyValueStore, key string) *EnvelopePersister {
	if key == "" {
		key = DefaultStorageKey
	}
	return &EnvelopePersister{kv: kv, key: key}
}

// Load returns the stored envelope. The bool is false when nothing has been
// stored yet.
func (p *EnvelopePersister) Load(ctx context.Context) (domain.Envelope, bool, error) {
	raw, err := p.kv.Get(ctx, p.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Envelope{}, false, nil
		}
		return domain.Envelope{}, false, err
	}
	env, err := importer.UnmarshalEnvelope([]byte(raw))
	if err != nil {
		return domain.Envelope{}, false, fmt.Errorf("decoding stored profiles: %w", err)
	}
	return env, true, nil
}

// Save overwrites the stored envelope.
func (p *EnvelopePersister) Save(ctx context.Context, env domain.Envelope) error {
	data, err := importer.MarshalEnvelope(env)
	if err != nil {
		return err
	}
	return p.kv.Set(ctx, p.key, string(data))
}
