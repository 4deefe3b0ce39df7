package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"xiuverse/internal/app/ports"
	"xiuverse/internal/domain/cultivation"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("XIUVERSE_DB_DSN")
	if dsn == "" {
		t.Skip("XIUVERSE_DB_DSN is required for integration test")
	}
	return dsn
}

func TestPlayerRepo_RoundTripAndVersionGuard(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	playerID := "it-player-roundtrip"
	_ = db.Exec("DELETE FROM player_profiles WHERE player_id = ?", playerID).Error

	repo := NewPlayerRepo(db)
	seed := cultivation.NewPlayerProfile(playerID, "integration", time.Now().UTC().Truncate(time.Second))
	seed.Level = 150
	seed.Realm = cultivation.RealmForLevel(150)
	seed.AttackBonus = 12
	if err := repo.SaveWithVersion(ctx, seed, 0); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.GetByPlayerID(ctx, playerID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Level != 150 || got.Realm != "筑基期" || got.AttackBonus != 12 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	got.SpiritStones += 500
	got.Version++
	if err := repo.SaveWithVersion(ctx, got, 1); err != nil {
		t.Fatalf("versioned update: %v", err)
	}

	// Stale expected version must not win.
	got.SpiritStones += 500
	got.Version++
	if err := repo.SaveWithVersion(ctx, got, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}
}

func TestPlayerRepo_NotFound(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if _, err := NewPlayerRepo(db).GetByPlayerID(context.Background(), "it-no-such-player"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventRepo_AppendAndListNewestFirst(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	playerID := "it-event-log"
	_ = db.Exec("DELETE FROM cultivation_events WHERE player_id = ?", playerID).Error

	repo := NewEventRepo(db)
	base := time.Now().UTC().Truncate(time.Second)
	err = repo.Append(ctx, playerID, []cultivation.CultivationEvent{
		{Type: cultivation.EventCultivationStopped, OccurredAt: base.Add(-time.Hour), Payload: map[string]any{"exp_gained": 100}},
		{Type: cultivation.EventOfflineRewardClaimed, OccurredAt: base, Payload: map[string]any{"exp_gained": 200}},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.ListByPlayerID(ctx, playerID, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != cultivation.EventOfflineRewardClaimed {
		t.Fatalf("expected newest first, got %q", events[0].Type)
	}
}

func TestEquipmentRepo_ListsOnlyEquipped(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	playerID := "it-equipment"
	_ = db.Exec("DELETE FROM player_equipment WHERE player_id = ?", playerID).Error
	_ = db.Exec(`INSERT INTO player_equipment (player_id, equipped, attack_bonus, defense_bonus, health_bonus, mana_bonus, speed_bonus)
		VALUES (?, TRUE, 5, 0, 20, 0, 0), (?, FALSE, 99, 0, 0, 0, 0)`, playerID, playerID).Error

	equipped, err := NewEquipmentRepo(db).ListEquipped(ctx, playerID)
	if err != nil {
		t.Fatalf("list equipped: %v", err)
	}
	if len(equipped) != 1 || equipped[0].AttackBonus != 5 || equipped[0].HealthBonus != 20 {
		t.Fatalf("unexpected equipped set: %+v", equipped)
	}
}
