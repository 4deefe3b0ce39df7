package gormrepo

import (
	"context"
	"errors"

	"xiuverse/internal/adapter/repo/gorm/model"
	"xiuverse/internal/app/ports"
	"xiuverse/internal/domain/cultivation"

	"gorm.io/gorm"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) GetByPlayerID(ctx context.Context, playerID string) (cultivation.PlayerProfile, error) {
	var m model.PlayerProfile
	if err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cultivation.PlayerProfile{}, ports.ErrNotFound
		}
		return cultivation.PlayerProfile{}, err
	}
	return toDomain(m), nil
}

// SaveWithVersion inserts when expectedVersion is 0, otherwise performs a
// version-guarded update. Zero affected rows means another request moved the
// aggregate first.
func (r PlayerRepo) SaveWithVersion(ctx context.Context, profile cultivation.PlayerProfile, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := toModel(profile)
		return db.Create(&m).Error
	}

	updates := map[string]any{
		"nickname":               profile.Nickname,
		"level":                  int32(profile.Level),
		"exp":                    profile.Exp,
		"exp_to_next":            profile.ExpToNext,
		"realm":                  profile.Realm,
		"cultivation_speed":      profile.CultivationSpeed,
		"spirit_stones":          profile.SpiritStones,
		"cultivation_points":     profile.CultivationPoints,
		"contribution_points":    profile.ContributionPoints,
		"total_cultivation_time": profile.TotalCultivationTime,
		"is_cultivating":         profile.IsCultivating,
		"cultivation_started_at": profile.CultivationStartedAt,
		"cultivation_ended_at":   profile.CultivationEndedAt,
		"last_activity_at":       profile.LastActivityAt,
		"attack":                 int32(profile.Attack),
		"defense":                int32(profile.Defense),
		"health":                 int32(profile.Health),
		"mana":                   int32(profile.Mana),
		"speed":                  int32(profile.Speed),
		"attack_bonus":           int32(profile.AttackBonus),
		"defense_bonus":          int32(profile.DefenseBonus),
		"health_bonus":           int32(profile.HealthBonus),
		"mana_bonus":             int32(profile.ManaBonus),
		"speed_bonus":            int32(profile.SpeedBonus),
		"version":                profile.Version,
		"updated_at":             profile.UpdatedAt,
	}

	res := db.Model(&model.PlayerProfile{}).
		Where("player_id = ? AND version = ?", profile.PlayerID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func toDomain(m model.PlayerProfile) cultivation.PlayerProfile {
	return cultivation.PlayerProfile{
		PlayerID:             m.PlayerID,
		Nickname:             m.Nickname,
		Level:                int(m.Level),
		Exp:                  m.Exp,
		ExpToNext:            m.ExpToNext,
		Realm:                m.Realm,
		CultivationSpeed:     m.CultivationSpeed,
		SpiritStones:         m.SpiritStones,
		CultivationPoints:    m.CultivationPoints,
		ContributionPoints:   m.ContributionPoints,
		TotalCultivationTime: m.TotalCultivationTime,
		IsCultivating:        m.IsCultivating,
		CultivationStartedAt: m.CultivationStartedAt,
		CultivationEndedAt:   m.CultivationEndedAt,
		LastActivityAt:       m.LastActivityAt,
		Attack:               int(m.Attack),
		Defense:              int(m.Defense),
		Health:               int(m.Health),
		Mana:                 int(m.Mana),
		Speed:                int(m.Speed),
		AttackBonus:          int(m.AttackBonus),
		DefenseBonus:         int(m.DefenseBonus),
		HealthBonus:          int(m.HealthBonus),
		ManaBonus:            int(m.ManaBonus),
		SpeedBonus:           int(m.SpeedBonus),
		Version:              m.Version,
		UpdatedAt:            m.UpdatedAt,
	}
}

func toModel(p cultivation.PlayerProfile) model.PlayerProfile {
	return model.PlayerProfile{
		PlayerID:             p.PlayerID,
		Nickname:             p.Nickname,
		Level:                int32(p.Level),
		Exp:                  p.Exp,
		ExpToNext:            p.ExpToNext,
		Realm:                p.Realm,
		CultivationSpeed:     p.CultivationSpeed,
		SpiritStones:         p.SpiritStones,
		CultivationPoints:    p.CultivationPoints,
		ContributionPoints:   p.ContributionPoints,
		TotalCultivationTime: p.TotalCultivationTime,
		IsCultivating:        p.IsCultivating,
		CultivationStartedAt: p.CultivationStartedAt,
		CultivationEndedAt:   p.CultivationEndedAt,
		LastActivityAt:       p.LastActivityAt,
		Attack:               int32(p.Attack),
		Defense:              int32(p.Defense),
		Health:               int32(p.Health),
		Mana:                 int32(p.Mana),
		Speed:                int32(p.Speed),
		AttackBonus:          int32(p.AttackBonus),
		DefenseBonus:         int32(p.DefenseBonus),
		HealthBonus:          int32(p.HealthBonus),
		ManaBonus:            int32(p.ManaBonus),
		SpeedBonus:           int32(p.SpeedBonus),
		Version:              p.Version,
		UpdatedAt:            p.UpdatedAt,
	}
}
