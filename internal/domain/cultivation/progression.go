package cultivation

import "math"

// AccrualRate computes the per-second passive gains for a player. The exp
// rate scales with the realm bonus and the per-player speed multiplier; the
// stone rate only tracks the multiplier, floored, never below 1.
func AccrualRate(p *PlayerProfile) Rate {
	speed := p.speedOrDefault()
	exp := float64(BaseExpPerSecond) * (1 + RealmBonus(p.Realm)) * speed

	stones := int64(math.Floor(speed))
	if stones < 1 {
		stones = 1
	}
	return Rate{
		ExpPerSecond:    int64(exp),
		StonesPerSecond: stones,
	}
}

// ApplyExperience credits exp and settles any level-ups it unlocks. The loop
// recomputes ExpToNext as Level * BaseExpPerLevel each pass and re-derives
// the realm from the new level. It is bounded by MaxLevelUpsPerApply; when
// the guard trips the remaining exp stays banked and GuardHit is set so the
// caller can log it.
func ApplyExperience(p *PlayerProfile, amount int64) ApplyResult {
	if amount < 0 {
		amount = 0
	}
	p.Exp += amount
	if p.ExpToNext <= 0 {
		p.ExpToNext = int64(p.Level) * BaseExpPerLevel
	}

	var out ApplyResult
	for p.Exp >= p.ExpToNext {
		if out.LevelsGained >= MaxLevelUpsPerApply {
			out.GuardHit = true
			break
		}
		p.Exp -= p.ExpToNext
		p.Level++
		p.ExpToNext = int64(p.Level) * BaseExpPerLevel

		p.Attack += LevelUpAttackGain
		p.Defense += LevelUpDefenseGain
		p.Health += LevelUpHealthGain
		p.Mana += LevelUpManaGain
		p.Speed += LevelUpSpeedGain

		p.Realm = RealmForLevel(p.Level)
		out.LevelsGained++
	}
	return out
}
