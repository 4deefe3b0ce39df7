package status

import "xiuverse/internal/domain/cultivation"

type Request struct {
	PlayerID string
}

type Response struct {
	Profile             cultivation.PlayerProfile `json:"profile"`
	EffectiveAttributes cultivation.AttributeSet  `json:"effective_attributes"`
	Rate                cultivation.Rate          `json:"rate"`
	RealmBonus          float64                   `json:"realm_bonus"`
	InventorySlots      int                       `json:"inventory_slots"`
}
