package attributes

import (
	"context"
	"errors"
	"strings"

	"xiuverse/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid attributes request")

const conflictRetries = 3

// EffectiveUseCase reads a player's combat attributes with equipment bonuses
// applied.
type EffectiveUseCase struct {
	Players ports.PlayerRepository
}

func (u EffectiveUseCase) Execute(ctx context.Context, req Request) (EffectiveResponse, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return EffectiveResponse{}, ErrInvalidRequest
	}
	profile, err := u.Players.GetByPlayerID(ctx, req.PlayerID)
	if err != nil {
		return EffectiveResponse{}, err
	}
	return EffectiveResponse{Attributes: profile.EffectiveAttributes()}, nil
}

// RecomputeUseCase resyncs the bonus accumulators from the equipped-item
// set. This is the authoritative drift-recovery path; the incremental
// add/remove bookkeeping done by the equipment collaborator is only a
// fast-path on top of it.
type RecomputeUseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Equipment ports.EquipmentRepository
	Metrics   ports.ProgressMetrics
}

func (u RecomputeUseCase) Execute(ctx context.Context, req RecomputeRequest) (RecomputeResponse, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return RecomputeResponse{}, ErrInvalidRequest
	}

	var out RecomputeResponse
	var err error
	for attempt := 0; attempt <= conflictRetries; attempt++ {
		err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			profile, err := u.Players.GetByPlayerID(txCtx, req.PlayerID)
			if err != nil {
				return err
			}
			equipped := req.Equipped
			if equipped == nil && u.Equipment != nil {
				equipped, err = u.Equipment.ListEquipped(txCtx, req.PlayerID)
				if err != nil {
					return err
				}
			}
			expected := profile.Version
			profile.RecomputeBonuses(equipped)
			profile.Version++
			if err := u.Players.SaveWithVersion(txCtx, profile, expected); err != nil {
				return err
			}
			out = RecomputeResponse{Profile: profile}
			return nil
		})
		if !errors.Is(err, ports.ErrConflict) {
			break
		}
	}

	if u.Metrics != nil {
		switch {
		case err == nil:
			u.Metrics.RecordSuccess("bonus_recompute")
		case errors.Is(err, ports.ErrConflict):
			u.Metrics.RecordConflict()
		default:
			u.Metrics.RecordFailure()
		}
	}
	if err != nil {
		return RecomputeResponse{}, err
	}
	return out, nil
}
