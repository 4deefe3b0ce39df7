package cultivate

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"xiuverse/internal/app/ports"
	"xiuverse/internal/domain/cultivation"
)

var ErrInvalidRequest = errors.New("invalid cultivate request")

// conflictRetries bounds re-runs after a lost optimistic-version race from a
// concurrent request for the same player.
const conflictRetries = 3

// StartUseCase begins an active cultivation session.
type StartUseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Events    ports.EventRepository
	Metrics   ports.ProgressMetrics
	Now       func() time.Time
}

func (u StartUseCase) Execute(ctx context.Context, req Request) (StartResponse, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return StartResponse{}, ErrInvalidRequest
	}
	now := resolveNow(u.Now)

	var out StartResponse
	err := runWithConflictRetry(ctx, u.TxManager, func(txCtx context.Context) error {
		profile, err := u.Players.GetByPlayerID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		expected := profile.Version
		if err := cultivation.StartCultivation(&profile, now()); err != nil {
			return err
		}
		profile.Version++
		if err := u.Players.SaveWithVersion(txCtx, profile, expected); err != nil {
			return err
		}
		if u.Events != nil {
			evt := cultivation.CultivationEvent{
				Type:       cultivation.EventCultivationStarted,
				OccurredAt: now(),
				Payload:    map[string]any{"player_id": req.PlayerID},
			}
			if err := u.Events.Append(txCtx, req.PlayerID, []cultivation.CultivationEvent{evt}); err != nil {
				return err
			}
		}
		out = StartResponse{Profile: profile}
		return nil
	})
	recordOutcome(u.Metrics, "cultivate_start", err)
	if err != nil {
		return StartResponse{}, err
	}
	return out, nil
}

// StopUseCase settles and closes an active session.
type StopUseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Events    ports.EventRepository
	Metrics   ports.ProgressMetrics
	Log       *slog.Logger
	Now       func() time.Time
}

func (u StopUseCase) Execute(ctx context.Context, req Request) (StopResponse, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return StopResponse{}, ErrInvalidRequest
	}
	now := resolveNow(u.Now)

	var out StopResponse
	var stopErr error
	err := runWithConflictRetry(ctx, u.TxManager, func(txCtx context.Context) error {
		stopErr = nil
		profile, err := u.Players.GetByPlayerID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		expected := profile.Version
		var session cultivation.SessionResult
		session, stopErr = cultivation.StopCultivation(&profile, now())
		// The self-heal path still flips the flag off. Persist that write and
		// commit it; ErrNotCultivating is surfaced after the tx so the heal is
		// not rolled back with it.
		profile.Version++
		if err := u.Players.SaveWithVersion(txCtx, profile, expected); err != nil {
			return err
		}
		if stopErr != nil {
			return nil
		}
		if session.GuardHit {
			u.logger().Warn("level-up guard hit during session settle",
				"player_id", req.PlayerID, "levels_gained", session.LevelsGained)
		}
		if u.Events != nil {
			events := []cultivation.CultivationEvent{{
				Type:       cultivation.EventCultivationStopped,
				OccurredAt: now(),
				Payload: map[string]any{
					"player_id":        req.PlayerID,
					"duration_seconds": session.ElapsedSeconds,
					"exp_gained":       session.ExpGained,
					"is_offline":       false,
				},
			}}
			if session.LevelsGained > 0 {
				events = append(events, cultivation.CultivationEvent{
					Type:       cultivation.EventLevelUp,
					OccurredAt: now(),
					Payload: map[string]any{
						"player_id": req.PlayerID,
						"level":     profile.Level,
						"realm":     profile.Realm,
					},
				})
			}
			if err := u.Events.Append(txCtx, req.PlayerID, events); err != nil {
				return err
			}
		}
		out = StopResponse{Profile: profile, Session: session}
		return nil
	})
	if err == nil && stopErr != nil {
		err = stopErr
	}
	recordOutcome(u.Metrics, "cultivate_stop", err)
	if err != nil {
		return StopResponse{}, err
	}
	return out, nil
}

func (u StopUseCase) logger() *slog.Logger {
	if u.Log != nil {
		return u.Log
	}
	return slog.Default()
}

func resolveNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}

func runWithConflictRetry(ctx context.Context, tx ports.TxManager, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= conflictRetries; attempt++ {
		err = tx.RunInTx(ctx, fn)
		if !errors.Is(err, ports.ErrConflict) {
			return err
		}
	}
	return err
}

func recordOutcome(m ports.ProgressMetrics, operation string, err error) {
	if m == nil {
		return
	}
	switch {
	case err == nil:
		m.RecordSuccess(operation)
	case errors.Is(err, ports.ErrConflict):
		m.RecordConflict()
	default:
		m.RecordFailure()
	}
}
