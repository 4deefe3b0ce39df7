package journal

import "xiuverse/internal/domain/cultivation"

type Request struct {
	PlayerID     string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

// Totals aggregates the payouts of the listed events.
type Totals struct {
	ExpGained          int64 `json:"exp_gained"`
	SpiritStonesGained int64 `json:"spirit_stones_gained"`
	DurationSeconds    int64 `json:"duration_seconds"`
}

type Response struct {
	Events []cultivation.CultivationEvent `json:"events"`
	Totals Totals                         `json:"totals"`
}
