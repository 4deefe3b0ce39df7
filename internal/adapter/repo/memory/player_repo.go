package memory

import (
	"context"

	"xiuverse/internal/app/ports"
	"xiuverse/internal/domain/cultivation"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) GetByPlayerID(_ context.Context, playerID string) (cultivation.PlayerProfile, error) {
	profile, ok := r.store.players[playerID]
	if !ok {
		return cultivation.PlayerProfile{}, ports.ErrNotFound
	}
	return profile, nil
}

func (r PlayerRepo) SaveWithVersion(_ context.Context, profile cultivation.PlayerProfile, expectedVersion int64) error {
	current, ok := r.store.players[profile.PlayerID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.players[profile.PlayerID] = profile
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.players[profile.PlayerID] = profile
	return nil
}
