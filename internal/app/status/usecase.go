package status

import (
	"context"
	"errors"
	"strings"

	"xiuverse/internal/app/ports"
	"xiuverse/internal/domain/cultivation"
)

var ErrInvalidRequest = errors.New("invalid status request")

// UseCase is the read-only player progression view. When an equipment
// repository is wired, the bonus accumulators in the response are reconciled
// against the live equipped set for display; the stored accumulators are not
// rewritten here.
type UseCase struct {
	Players   ports.PlayerRepository
	Equipment ports.EquipmentRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	profile, err := u.Players.GetByPlayerID(ctx, req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	if u.Equipment != nil {
		equipped, err := u.Equipment.ListEquipped(ctx, req.PlayerID)
		if err != nil {
			return Response{}, err
		}
		profile.RecomputeBonuses(equipped)
	}
	return Response{
		Profile:             profile,
		EffectiveAttributes: profile.EffectiveAttributes(),
		Rate:                cultivation.AccrualRate(&profile),
		RealmBonus:          cultivation.RealmBonus(profile.Realm),
		InventorySlots:      cultivation.MaxInventorySlots(profile.Level),
	}, nil
}
