package journal

import (
	"context"
	"errors"
	"strings"

	"xiuverse/internal/app/ports"
	"xiuverse/internal/domain/cultivation"
)

var ErrInvalidRequest = errors.New("invalid journal request")

const defaultLimit = 100

// UseCase lists a player's cultivation log, newest first.
type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	events, err := u.Events.ListByPlayerID(ctx, req.PlayerID, limit)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return Response{Events: []cultivation.CultivationEvent{}}, nil
		}
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{Events: events, Totals: sumTotals(events)}, nil
}

func filterByTimeWindow(events []cultivation.CultivationEvent, from, to int64) []cultivation.CultivationEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]cultivation.CultivationEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func sumTotals(events []cultivation.CultivationEvent) Totals {
	var t Totals
	for _, evt := range events {
		t.ExpGained += int64(num(evt.Payload["exp_gained"]))
		t.SpiritStonesGained += int64(num(evt.Payload["stones_gained"]))
		t.DurationSeconds += int64(num(evt.Payload["duration_seconds"]))
	}
	return t
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
