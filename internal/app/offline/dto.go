package offline

import "xiuverse/internal/domain/cultivation"

type Request struct {
	PlayerID string
}

type Response struct {
	Profile cultivation.PlayerProfile `json:"profile"`
	Reward  cultivation.RewardResult  `json:"reward"`
}
