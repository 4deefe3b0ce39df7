package cultivation

import (
	"errors"
	"time"
)

var (
	ErrAlreadyCultivating = errors.New("already cultivating")
	ErrNotCultivating     = errors.New("not cultivating")
)

// StartCultivation transitions Idle -> Cultivating. A second start while
// active is rejected so duplicate client requests surface instead of
// silently resetting the session window.
func StartCultivation(p *PlayerProfile, now time.Time) error {
	if p.IsCultivating {
		return ErrAlreadyCultivating
	}
	p.IsCultivating = true
	p.CultivationStartedAt = &now
	p.LastActivityAt = now
	p.UpdatedAt = now
	return nil
}

// StopCultivation settles an active session: elapsed time is clamped to
// MaxSessionSeconds, session exp to MaxExpPerSession, and the total time
// counter accrues in minutes. Stopping while idle returns ErrNotCultivating
// but still forces the flag off to self-heal inconsistent state.
func StopCultivation(p *PlayerProfile, now time.Time) (SessionResult, error) {
	if !p.IsCultivating {
		p.IsCultivating = false
		p.UpdatedAt = now
		return SessionResult{}, ErrNotCultivating
	}

	var out SessionResult
	if p.CultivationStartedAt != nil {
		elapsed := int64(now.Sub(*p.CultivationStartedAt) / time.Second)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed > MaxSessionSeconds {
			elapsed = MaxSessionSeconds
		}

		expGained := int64(float64(elapsed) * BaseSessionExpPerSecond * p.speedOrDefault())
		if expGained > MaxExpPerSession {
			expGained = MaxExpPerSession
		}

		applied := ApplyExperience(p, expGained)
		p.TotalCultivationTime += elapsed / 60

		out = SessionResult{
			ElapsedSeconds: elapsed,
			ExpGained:      expGained,
			LevelsGained:   applied.LevelsGained,
			GuardHit:       applied.GuardHit,
		}
	}

	p.IsCultivating = false
	p.CultivationEndedAt = &now
	p.UpdatedAt = now
	return out, nil
}
