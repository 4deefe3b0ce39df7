package ports

import (
	"context"

	"xiuverse/internal/domain/cultivation"
)

// PlayerRepository persists the per-player progression aggregate.
// SaveWithVersion updates only when the stored version matches
// expectedVersion and returns ErrConflict otherwise; expectedVersion 0
// means insert.
type PlayerRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (cultivation.PlayerProfile, error)
	SaveWithVersion(ctx context.Context, profile cultivation.PlayerProfile, expectedVersion int64) error
}

// EventRepository is the append-only cultivation audit log.
type EventRepository interface {
	Append(ctx context.Context, playerID string, events []cultivation.CultivationEvent) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]cultivation.CultivationEvent, error)
}

// EquipmentRepository enumerates the bonuses of a player's currently
// equipped items. The equipment CRUD itself lives outside this engine.
type EquipmentRepository interface {
	ListEquipped(ctx context.Context, playerID string) ([]cultivation.EquipmentBonus, error)
}
