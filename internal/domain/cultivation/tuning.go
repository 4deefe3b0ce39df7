package cultivation

const (
	// Passive accrual while cultivating or offline.
	BaseExpPerSecond        = 10
	BaseStonesPerSecond     = 1
	BaseSessionExpPerSecond = 1.0

	// Level curve: next level always costs Level * BaseExpPerLevel exp.
	BaseExpPerLevel = 100

	// Per-level base attribute growth.
	LevelUpAttackGain  = 5
	LevelUpDefenseGain = 3
	LevelUpHealthGain  = 20
	LevelUpManaGain    = 10
	LevelUpSpeedGain   = 1

	// MaxLevelUpsPerApply bounds the level-up loop against pathological
	// experience jumps. Hitting it is reported, not treated as an error.
	MaxLevelUpsPerApply = 100

	// Elapsed-time windows.
	MaxOfflineSeconds          = 24 * 60 * 60
	MinOfflineSecondsForReward = 60
	MaxSessionSeconds          = 24 * 60 * 60
	MaxExpPerSession           = 3600
	SecondsPerCultivationPoint = 300

	StartingSpiritStones = 1000

	MaxPlayerLevel = 9999
)
