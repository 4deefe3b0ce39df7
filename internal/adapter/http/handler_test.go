package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"xiuverse/internal/adapter/repo/memory"
	"xiuverse/internal/app/attributes"
	"xiuverse/internal/app/cultivate"
	"xiuverse/internal/app/ports"
	"xiuverse/internal/app/status"
	"xiuverse/internal/domain/cultivation"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestRequirePlayerID_FromHeader(t *testing.T) {
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, " player-1 ")

	playerID, err := requirePlayerID(ctx)
	if err != nil {
		t.Fatalf("requirePlayerID error: %v", err)
	}
	if playerID != "player-1" {
		t.Fatalf("unexpected player id: %q", playerID)
	}
}

func TestRequirePlayerID_MissingHeader(t *testing.T) {
	ctx := &app.RequestContext{}

	_, err := requirePlayerID(ctx)
	if err != ErrMissingPlayerIDHeader {
		t.Fatalf("expected ErrMissingPlayerIDHeader, got %v", err)
	}
}

func TestWriteError_AlreadyCultivating(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, cultivation.ErrAlreadyCultivating)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "already_cultivating"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_NotCultivating(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, cultivation.ErrNotCultivating)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "not_cultivating"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_NotFound(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrNotFound)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "not_found"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_Conflict(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrConflict)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "conflict"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_InvalidRequest(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, cultivate.ErrInvalidRequest)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "bad_request"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_Unknown(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, errors.New("db exploded"))

	if got, want := ctx.Response.StatusCode(), consts.StatusInternalServerError; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["message"], "internal error"; got != want {
		t.Fatalf("error message mismatch: got=%q want=%q", got, want)
	}
}

func TestStartCultivation_OK(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	store := memory.NewStore()
	store.SeedPlayer(cultivation.NewPlayerProfile("p-1", "道友", now.Add(-time.Hour)))

	h := Handler{
		StartUC: cultivate.StartUseCase{
			TxManager: memory.NewTxManager(store),
			Players:   memory.NewPlayerRepo(store),
			Events:    memory.NewEventRepo(store),
			Now:       func() time.Time { return now },
		},
	}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, "p-1")

	h.startCultivation(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	profile, _ := body["profile"].(map[string]any)
	if got, want := profile["is_cultivating"], true; got != want {
		t.Fatalf("is_cultivating mismatch: got=%v want=%v", got, want)
	}
}

func TestStartCultivation_MissingHeader(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}

	h.startCultivation(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "missing_player_id"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestPlayerStatus_UnknownPlayer(t *testing.T) {
	store := memory.NewStore()
	h := Handler{
		StatusUC: status.UseCase{
			Players:   memory.NewPlayerRepo(store),
			Equipment: memory.NewEquipmentRepo(store),
		},
	}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, "ghost")

	h.playerStatus(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestRecomputeBonuses_InvalidJSON(t *testing.T) {
	h := Handler{RecomputeUC: attributes.RecomputeUseCase{}}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, "p-1")
	ctx.Request.SetBody([]byte(`{"equipped":`))

	h.recomputeBonuses(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "invalid_json"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestKPI_NotConfigured(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}

	h.kpi(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

type fakeKPI struct{}

func (fakeKPI) SnapshotAny() any {
	return map[string]int64{"cultivate_start": 2}
}

func TestKPI_OK(t *testing.T) {
	h := Handler{KPI: fakeKPI{}}
	ctx := &app.RequestContext{}

	h.kpi(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]int64
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["cultivate_start"], int64(2); got != want {
		t.Fatalf("counter mismatch: got=%d want=%d", got, want)
	}
}
