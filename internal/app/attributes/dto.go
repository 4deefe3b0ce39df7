package attributes

import "xiuverse/internal/domain/cultivation"

type Request struct {
	PlayerID string
}

type EffectiveResponse struct {
	Attributes cultivation.AttributeSet `json:"attributes"`
}

// RecomputeRequest resyncs the bonus accumulators. When Equipped is nil the
// use case loads the equipped set from the EquipmentRepository; a caller that
// already holds the set (e.g. right after a bulk equipment change) may pass
// it in directly.
type RecomputeRequest struct {
	PlayerID string
	Equipped []cultivation.EquipmentBonus
}

type RecomputeResponse struct {
	Profile cultivation.PlayerProfile `json:"profile"`
}
