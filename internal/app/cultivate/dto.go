package cultivate

import "xiuverse/internal/domain/cultivation"

type Request struct {
	PlayerID string
}

type StartResponse struct {
	Profile cultivation.PlayerProfile `json:"profile"`
}

type StopResponse struct {
	Profile cultivation.PlayerProfile `json:"profile"`
	Session cultivation.SessionResult `json:"session"`
}
