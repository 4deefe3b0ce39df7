package model

import "time"

// PlayerProfile maps the player_profiles table.
type PlayerProfile struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	PlayerID string `gorm:"column:player_id;uniqueIndex;size:64"`
	Nickname string `gorm:"column:nickname;size:64"`

	Level     int32  `gorm:"column:level"`
	Exp       int64  `gorm:"column:exp"`
	ExpToNext int64  `gorm:"column:exp_to_next"`
	Realm     string `gorm:"column:realm;size:32"`

	CultivationSpeed   float64 `gorm:"column:cultivation_speed"`
	SpiritStones       int64   `gorm:"column:spirit_stones"`
	CultivationPoints  int64   `gorm:"column:cultivation_points"`
	ContributionPoints int64   `gorm:"column:contribution_points"`

	TotalCultivationTime int64 `gorm:"column:total_cultivation_time"`

	IsCultivating        bool       `gorm:"column:is_cultivating"`
	CultivationStartedAt *time.Time `gorm:"column:cultivation_started_at"`
	CultivationEndedAt   *time.Time `gorm:"column:cultivation_ended_at"`
	LastActivityAt       time.Time  `gorm:"column:last_activity_at"`

	Attack  int32 `gorm:"column:attack"`
	Defense int32 `gorm:"column:defense"`
	Health  int32 `gorm:"column:health"`
	Mana    int32 `gorm:"column:mana"`
	Speed   int32 `gorm:"column:speed"`

	AttackBonus  int32 `gorm:"column:attack_bonus"`
	DefenseBonus int32 `gorm:"column:defense_bonus"`
	HealthBonus  int32 `gorm:"column:health_bonus"`
	ManaBonus    int32 `gorm:"column:mana_bonus"`
	SpeedBonus   int32 `gorm:"column:speed_bonus"`

	Version   int64     `gorm:"column:version"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PlayerProfile) TableName() string { return "player_profiles" }

// CultivationEvent maps the append-only cultivation_events table.
type CultivationEvent struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	PlayerID   string    `gorm:"column:player_id;index;size:64"`
	Type       string    `gorm:"column:type;size:48"`
	OccurredAt time.Time `gorm:"column:occurred_at;index"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
}

func (CultivationEvent) TableName() string { return "cultivation_events" }

// PlayerEquipment is the equipped-item projection consumed by the bonus
// recompute. Ownership of the full equipment lifecycle lives elsewhere.
type PlayerEquipment struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	PlayerID string `gorm:"column:player_id;index;size:64"`
	Equipped bool   `gorm:"column:equipped"`

	AttackBonus  int32 `gorm:"column:attack_bonus"`
	DefenseBonus int32 `gorm:"column:defense_bonus"`
	HealthBonus  int32 `gorm:"column:health_bonus"`
	ManaBonus    int32 `gorm:"column:mana_bonus"`
	SpeedBonus   int32 `gorm:"column:speed_bonus"`
}

func (PlayerEquipment) TableName() string { return "player_equipment" }
