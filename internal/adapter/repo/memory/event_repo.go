package memory

import (
	"context"

	"xiuverse/internal/app/ports"
	"xiuverse/internal/domain/cultivation"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, playerID string, events []cultivation.CultivationEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.events[playerID] = append(r.store.events[playerID], events...)
	return nil
}

// ListByPlayerID returns newest first, like the gorm implementation.
func (r EventRepo) ListByPlayerID(_ context.Context, playerID string, limit int) ([]cultivation.CultivationEvent, error) {
	stored := r.store.events[playerID]
	if len(stored) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]cultivation.CultivationEvent, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
