package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/deadzone/internal/ai"
	"github.com/udisondev/deadzone/internal/config"
	"github.com/udisondev/deadzone/internal/db"
	"github.com/udisondev/deadzone/internal/encounter"
	"github.com/udisondev/deadzone/internal/progress"
)

const ConfigPath = "config/deadzone.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := ConfigPath
	if p := os.Getenv("DEADZONE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	fingerprint, err := cfg.Fingerprint()
	if err != nil {
		return fmt.Errorf("fingerprinting config: %w", err)
	}
	slog.Info("deadzone arena starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"tick_rate", cfg.TickRate,
		"duration", cfg.Duration,
		"fingerprint", fingerprint[:12])

	store := progress.OpenStore(cfg.SaveApp)
	if err := store.Load(); err != nil {
		slog.Warn("loading save data", "error", err)
	}
	settings := store.Settings()
	slog.Info("settings loaded",
		"persistent", store.Persistent(),
		"music", settings.MusicVolume,
		"sound", settings.SoundVolume,
		"brightness", settings.Brightness,
		"quality", settings.QualityLabel())

	var repo *db.EncounterRepository
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")
		repo = db.NewEncounterRepository(database.Pool())
	}

	arena, err := encounter.New(cfg, nil)
	if err != nil {
		return fmt.Errorf("creating encounter: %w", err)
	}
	if store.RestoreFlags(arena.Flags()) {
		slog.Info("progress restored", "scene", arena.Flags().SceneIndex, "has_key", arena.Flags().HasKey)
	}

	records := make(chan db.EncounterRecord, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(records)
		slog.Info("starting encounter", "encounter", arena.ID())
		summary, err := arena.Run(gctx)
		if err != nil {
			return fmt.Errorf("encounter: %w", err)
		}
		slog.Info("encounter finished",
			"encounter", summary.ID,
			"elapsed", summary.Elapsed,
			"kills", summary.TotalKills(),
			"deaths", summary.Deaths,
			"shots", summary.Shots,
			"scenes_cleared", summary.ScenesCleared)

		if err := store.SaveFlags(arena.Flags()); err != nil {
			slog.Warn("saving progress", "error", err)
		}

		rec, err := newRecord(arena, summary, fingerprint)
		if err != nil {
			return err
		}
		records <- rec
		return nil
	})

	g.Go(func() error {
		for rec := range records {
			if repo == nil {
				slog.Debug("database disabled, encounter not stored", "encounter", rec.ID)
				continue
			}
			// The run may have ended on shutdown; the record is still written.
			if err := repo.Save(context.WithoutCancel(gctx), rec); err != nil {
				return fmt.Errorf("storing encounter: %w", err)
			}
			slog.Info("encounter stored", "encounter", rec.ID)
		}
		return nil
	})

	return g.Wait()
}

func newRecord(arena *encounter.Encounter, s encounter.Summary, fingerprint string) (db.EncounterRecord, error) {
	summary, err := encounter.EncodeSummary(s)
	if err != nil {
		return db.EncounterRecord{}, err
	}
	snapshot, err := encounter.EncodeSnapshot(arena.Snapshot())
	if err != nil {
		return db.EncounterRecord{}, err
	}
	return db.EncounterRecord{
		ID:                arena.ID(),
		ConfigFingerprint: fingerprint,
		StartedAt:         s.StartedAt,
		ElapsedSeconds:    s.Elapsed,
		Kills:             s.TotalKills(),
		Deaths:            s.Deaths,
		Shots:             s.Shots,
		ScenesCleared:     s.ScenesCleared,
		Summary:           summary,
		Snapshot:          snapshot,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
