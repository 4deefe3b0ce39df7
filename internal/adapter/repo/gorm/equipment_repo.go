package gormrepo

import (
	"context"

	"xiuverse/internal/adapter/repo/gorm/model"
	"xiuverse/internal/domain/cultivation"

	"gorm.io/gorm"
)

// EquipmentRepo projects equipped-item bonuses; equipment CRUD is owned by
// an external collaborator.
type EquipmentRepo struct {
	db *gorm.DB
}

func NewEquipmentRepo(db *gorm.DB) EquipmentRepo {
	return EquipmentRepo{db: db}
}

func (r EquipmentRepo) ListEquipped(ctx context.Context, playerID string) ([]cultivation.EquipmentBonus, error) {
	rows := []model.PlayerEquipment{}
	err := getDBFromCtx(ctx, r.db).
		Where("player_id = ? AND equipped = ?", playerID, true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]cultivation.EquipmentBonus, 0, len(rows))
	for _, row := range rows {
		out = append(out, cultivation.EquipmentBonus{
			AttackBonus:  int(row.AttackBonus),
			DefenseBonus: int(row.DefenseBonus),
			HealthBonus:  int(row.HealthBonus),
			ManaBonus:    int(row.ManaBonus),
			SpeedBonus:   int(row.SpeedBonus),
		})
	}
	return out, nil
}
