package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	httpadapter "xiuverse/internal/adapter/http"
	metricsinmem "xiuverse/internal/adapter/metrics/inmemory"
	gormrepo "xiuverse/internal/adapter/repo/gorm"
	"xiuverse/internal/app/attributes"
	"xiuverse/internal/app/cultivate"
	"xiuverse/internal/app/journal"
	"xiuverse/internal/app/offline"
	"xiuverse/internal/app/ports"
	"xiuverse/internal/app/status"
	"xiuverse/internal/config"
	"xiuverse/internal/domain/cultivation"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config")
	migrationsDir := flag.String("migrations", "./migrations", "path to SQL migrations")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Log)
	slog.SetDefault(logger)

	if cfg.DB.DSN == "" {
		logger.Error("db.dsn is required (config file or XIUVERSE_DB_DSN)")
		os.Exit(1)
	}
	db, err := gormrepo.OpenPostgres(cfg.DB.DSN)
	if err != nil {
		logger.Error("open postgres", "error", err)
		os.Exit(1)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, *migrationsDir); err != nil {
		logger.Error("apply migrations", "error", err)
		os.Exit(1)
	}

	playerRepo := gormrepo.NewPlayerRepo(db)
	eventRepo := gormrepo.NewEventRepo(db)
	equipmentRepo := gormrepo.NewEquipmentRepo(db)
	txManager := gormrepo.NewTxManager(db)
	kpiRecorder := metricsinmem.NewRecorder()

	seedDemoPlayer(playerRepo, logger)

	h := httpadapter.Handler{
		StartUC: cultivate.StartUseCase{
			TxManager: txManager,
			Players:   playerRepo,
			Events:    eventRepo,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		StopUC: cultivate.StopUseCase{
			TxManager: txManager,
			Players:   playerRepo,
			Events:    eventRepo,
			Metrics:   kpiRecorder,
			Log:       logger,
			Now:       time.Now,
		},
		ClaimUC: offline.ClaimUseCase{
			TxManager: txManager,
			Players:   playerRepo,
			Events:    eventRepo,
			Metrics:   kpiRecorder,
			Log:       logger,
			Now:       time.Now,
		},
		EffectiveUC: attributes.EffectiveUseCase{Players: playerRepo},
		RecomputeUC: attributes.RecomputeUseCase{
			TxManager: txManager,
			Players:   playerRepo,
			Equipment: equipmentRepo,
			Metrics:   kpiRecorder,
		},
		StatusUC:  status.UseCase{Players: playerRepo, Equipment: equipmentRepo},
		JournalUC: journal.UseCase{Events: eventRepo},
		KPI:       kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)

	logger.Info("xiuverse server listening", "addr", cfg.Server.Addr)
	s.Spin()
}

// seedDemoPlayer makes a fresh database immediately usable with
// X-Player-ID: demo-player. An existing row is left untouched.
func seedDemoPlayer(players ports.PlayerRepository, logger *slog.Logger) {
	ctx := context.Background()
	_, err := players.GetByPlayerID(ctx, "demo-player")
	if err == nil {
		return
	}
	if !errors.Is(err, ports.ErrNotFound) {
		logger.Error("load demo player", "error", err)
		os.Exit(1)
	}
	profile := cultivation.NewPlayerProfile("demo-player", "无名散修", time.Now())
	if err := players.SaveWithVersion(ctx, profile, 0); err != nil {
		logger.Error("seed demo player", "error", err)
		os.Exit(1)
	}
	logger.Info("seeded demo player", "player_id", profile.PlayerID)
}
