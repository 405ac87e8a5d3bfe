package service

import (
	"context"
	"encoding/json"

	"github.com/partnerhub/admin-api/internal/core/ports"
)

// mutation is the shared sequencing core behind every write: lookup the
// current value, validate the payload, then persist and record the audit
// entry inside one transaction. A failure at any step aborts everything
// after it, and an audit failure rolls the persisted change back.
type mutation[T any] struct {
	// lookup fetches the pre-mutation value. Nil for creations, where
	// the old value does not exist.
	lookup func(ctx context.Context) (*T, error)
	// validate runs the payload's schema rules. Optional.
	validate func() error
	// persist applies the store mutation and returns the new value.
	persist func(ctx context.Context) (*T, error)
	// audit records the entry for this mutation. Runs in the same
	// transaction as persist.
	audit func(ctx context.Context, old, updated *T) error
}

func runMutation[T any](ctx context.Context, tx ports.TxRunner, m mutation[T]) (*T, error) {
	var old *T
	if m.lookup != nil {
		found, err := m.lookup(ctx)
		if err != nil {
			return nil, err
		}
		old = found
	}

	if m.validate != nil {
		if err := m.validate(); err != nil {
			return nil, err
		}
	}

	var updated *T
	err := tx.InTx(ctx, func(ctx context.Context) error {
		persisted, err := m.persist(ctx)
		if err != nil {
			return err
		}
		updated = persisted
		return m.audit(ctx, old, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// encodeValue renders an entity snapshot for an audit column. Sensitive
// fields are excluded by the entity's own JSON tags. Nil encodes as
// "null" so creations and deletions keep a well-formed column.
func encodeValue[T any](v *T) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
