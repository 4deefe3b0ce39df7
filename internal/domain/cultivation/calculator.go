package cultivation

import "math"

// Auxiliary progression-derived formulas consumed by the status view and by
// the (external) skill and equipment collaborators.

func SkillUpgradeCost(currentLevel int) int64 {
	return int64(currentLevel) * 100
}

func EquipmentEnhanceCost(currentEnhanceLevel int) int64 {
	return int64(currentEnhanceLevel+1) * 500
}

// MaxInventorySlots grows by 5 slots per 10 player levels.
func MaxInventorySlots(playerLevel int) int {
	return 20 + (playerLevel/10)*5
}

// RealmDamageBonus mirrors the accrual bonus as a flat damage modifier.
func RealmDamageBonus(realm string) float64 {
	return RealmBonus(realm)
}

// RealmCooldownReduction converts the realm bonus into a cooldown cut,
// capped at 50%.
func RealmCooldownReduction(realm string) float64 {
	return math.Min(RealmBonus(realm)*0.1, 0.5)
}

// LevelEffectBonus scales a skill's effect with player and skill level. The
// player-level part caps at +200%.
func LevelEffectBonus(playerLevel, skillLevel int) float64 {
	levelBonus := math.Min(float64(playerLevel)*0.01, 2.0)
	skillBonus := float64(skillLevel) * 0.05
	return 1.0 + levelBonus + skillBonus
}
