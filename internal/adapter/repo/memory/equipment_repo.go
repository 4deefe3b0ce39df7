package memory

import (
	"context"

	"xiuverse/internal/domain/cultivation"
)

type EquipmentRepo struct {
	store *Store
}

func NewEquipmentRepo(store *Store) EquipmentRepo {
	return EquipmentRepo{store: store}
}

// ListEquipped returns the seeded equipped set; a player with no equipment
// yields an empty slice, not an error.
func (r EquipmentRepo) ListEquipped(_ context.Context, playerID string) ([]cultivation.EquipmentBonus, error) {
	equipped := r.store.equipped[playerID]
	out := make([]cultivation.EquipmentBonus, len(equipped))
	copy(out, equipped)
	return out, nil
}
