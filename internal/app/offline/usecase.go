package offline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"xiuverse/internal/app/ports"
	"xiuverse/internal/domain/cultivation"
)

var ErrInvalidRequest = errors.New("invalid offline claim request")

const conflictRetries = 3

// ClaimUseCase settles the offline-absence reward for a player. The claim is
// safe to repeat: every call, including a zero-reward one, advances the
// player's last-activity marker, so an immediate second claim pays nothing.
type ClaimUseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Events    ports.EventRepository
	Metrics   ports.ProgressMetrics
	Log       *slog.Logger
	Now       func() time.Time
}

func (u ClaimUseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	var err error
	for attempt := 0; attempt <= conflictRetries; attempt++ {
		err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			profile, err := u.Players.GetByPlayerID(txCtx, req.PlayerID)
			if err != nil {
				return err
			}
			expected := profile.Version
			now := nowFn()
			reward := cultivation.SettleOffline(&profile, now)
			profile.Version++
			if err := u.Players.SaveWithVersion(txCtx, profile, expected); err != nil {
				return err
			}

			if reward.GuardHit {
				u.logger().Warn("level-up guard hit during offline settle",
					"player_id", req.PlayerID, "levels_gained", reward.LevelsGained)
			}

			// Zero-reward claims only advance the activity marker; they do not
			// produce an audit row.
			if u.Events != nil && reward.ElapsedSeconds > 0 {
				evt := cultivation.CultivationEvent{
					Type:       cultivation.EventOfflineRewardClaimed,
					OccurredAt: now,
					Payload: map[string]any{
						"player_id":        req.PlayerID,
						"exp_gained":       reward.ExpGained,
						"stones_gained":    reward.SpiritStonesGained,
						"points_gained":    reward.CultivationPointsGained,
						"duration_seconds": reward.ElapsedSeconds,
						"is_offline":       true,
					},
				}
				if err := u.Events.Append(txCtx, req.PlayerID, []cultivation.CultivationEvent{evt}); err != nil {
					return err
				}
			}

			out = Response{Profile: profile, Reward: reward}
			return nil
		})
		if !errors.Is(err, ports.ErrConflict) {
			break
		}
	}

	if u.Metrics != nil {
		switch {
		case err == nil:
			u.Metrics.RecordSuccess("offline_claim")
		case errors.Is(err, ports.ErrConflict):
			u.Metrics.RecordConflict()
		default:
			u.Metrics.RecordFailure()
		}
	}
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u ClaimUseCase) logger() *slog.Logger {
	if u.Log != nil {
		return u.Log
	}
	return slog.Default()
}
