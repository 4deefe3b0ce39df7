package cultivation

import "time"

// SettleOffline credits progression for the absence window since
// LastActivityAt, clamped to MaxOfflineSeconds. Sub-minute windows earn
// nothing but still advance LastActivityAt; without that a player could sit
// on a short window and re-claim it once it grows.
func SettleOffline(p *PlayerProfile, now time.Time) RewardResult {
	elapsed := int64(now.Sub(p.LastActivityAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > MaxOfflineSeconds {
		elapsed = MaxOfflineSeconds
	}

	if elapsed < MinOfflineSecondsForReward {
		p.LastActivityAt = now
		p.UpdatedAt = now
		return RewardResult{}
	}

	rate := AccrualRate(p)
	expGained := rate.ExpPerSecond * elapsed
	stonesGained := rate.StonesPerSecond * elapsed
	pointsGained := elapsed / SecondsPerCultivationPoint

	applied := ApplyExperience(p, expGained)
	p.SpiritStones += stonesGained
	p.CultivationPoints += pointsGained
	p.TotalCultivationTime += elapsed
	p.LastActivityAt = now
	p.UpdatedAt = now

	return RewardResult{
		ElapsedSeconds:          elapsed,
		OfflineMinutes:          elapsed / 60,
		ExpGained:               expGained,
		SpiritStonesGained:      stonesGained,
		CultivationPointsGained: pointsGained,
		LevelsGained:            applied.LevelsGained,
		GuardHit:                applied.GuardHit,
	}
}
