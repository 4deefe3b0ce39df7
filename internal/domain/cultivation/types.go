package cultivation

import "time"

type AttributeSet struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Health  int `json:"health"`
	Mana    int `json:"mana"`
	Speed   int `json:"speed"`
}

// EquipmentBonus is the stat projection of a single equipped item.
type EquipmentBonus struct {
	AttackBonus  int `json:"attack_bonus"`
	DefenseBonus int `json:"defense_bonus"`
	HealthBonus  int `json:"health_bonus"`
	ManaBonus    int `json:"mana_bonus"`
	SpeedBonus   int `json:"speed_bonus"`
}

// PlayerProfile is the per-player progression aggregate. Every mutation goes
// through this package; Version backs the optimistic write guard in the repo.
type PlayerProfile struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname,omitempty"`

	Level     int    `json:"level"`
	Exp       int64  `json:"exp"`
	ExpToNext int64  `json:"exp_to_next"`
	Realm     string `json:"realm"`

	CultivationSpeed  float64 `json:"cultivation_speed"`
	SpiritStones      int64   `json:"spirit_stones"`
	CultivationPoints int64   `json:"cultivation_points"`
	ContributionPoints int64  `json:"contribution_points"`

	// TotalCultivationTime accumulates in minutes for active sessions and is
	// monotonically non-decreasing.
	TotalCultivationTime int64 `json:"total_cultivation_time"`

	IsCultivating        bool       `json:"is_cultivating"`
	CultivationStartedAt *time.Time `json:"cultivation_started_at,omitempty"`
	CultivationEndedAt   *time.Time `json:"cultivation_ended_at,omitempty"`
	LastActivityAt       time.Time  `json:"last_activity_at"`

	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Health  int `json:"health"`
	Mana    int `json:"mana"`
	Speed   int `json:"speed"`

	// Equipment bonus accumulators. Invariant: each equals the sum of the
	// corresponding field over the set of currently equipped items.
	AttackBonus  int `json:"attack_bonus"`
	DefenseBonus int `json:"defense_bonus"`
	HealthBonus  int `json:"health_bonus"`
	ManaBonus    int `json:"mana_bonus"`
	SpeedBonus   int `json:"speed_bonus"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPlayerProfile seeds a fresh aggregate with the registration defaults.
func NewPlayerProfile(playerID, nickname string, now time.Time) PlayerProfile {
	return PlayerProfile{
		PlayerID:         playerID,
		Nickname:         nickname,
		Level:            1,
		Exp:              0,
		ExpToNext:        BaseExpPerLevel,
		Realm:            RealmForLevel(1),
		CultivationSpeed: 1.0,
		SpiritStones:     StartingSpiritStones,
		Attack:           10,
		Defense:          5,
		Health:           100,
		Mana:             50,
		Speed:            10,
		LastActivityAt:   now,
		Version:          1,
	}
}

// speedOrDefault normalizes an absent or corrupt multiplier to 1.0 rather
// than letting a zero value silently null out all accrual.
func (p *PlayerProfile) speedOrDefault() float64 {
	if p.CultivationSpeed <= 0 {
		return 1.0
	}
	return p.CultivationSpeed
}

type Rate struct {
	ExpPerSecond    int64 `json:"exp_per_second"`
	StonesPerSecond int64 `json:"stones_per_second"`
}

type ApplyResult struct {
	LevelsGained int  `json:"levels_gained"`
	GuardHit     bool `json:"guard_hit"`
}

type SessionResult struct {
	ElapsedSeconds int64 `json:"elapsed_seconds"`
	ExpGained      int64 `json:"exp_gained"`
	LevelsGained   int   `json:"levels_gained"`
	GuardHit       bool  `json:"guard_hit"`
}

type RewardResult struct {
	ElapsedSeconds          int64 `json:"elapsed_seconds"`
	OfflineMinutes          int64 `json:"offline_minutes"`
	ExpGained               int64 `json:"exp_gained"`
	SpiritStonesGained      int64 `json:"spirit_stones_gained"`
	CultivationPointsGained int64 `json:"cultivation_points_gained"`
	LevelsGained            int   `json:"levels_gained"`
	GuardHit                bool  `json:"guard_hit"`
}

// CultivationEvent is an append-only audit record of a progression change.
type CultivationEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventCultivationStarted  = "cultivation_started"
	EventCultivationStopped  = "cultivation_stopped"
	EventOfflineRewardClaimed = "offline_reward_claimed"
	EventLevelUp             = "level_up"
)
