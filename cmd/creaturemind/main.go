package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nidhogg/creature-mind/internal/api"
	"github.com/nidhogg/creature-mind/internal/config"
	"github.com/nidhogg/creature-mind/internal/creature"
	"github.com/nidhogg/creature-mind/internal/decision"
	"github.com/nidhogg/creature-mind/internal/lifecycle"
	pgstore "github.com/nidhogg/creature-mind/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	logger.Info("Starting Creature Mind...")

	// Load configuration
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/creaturemind.json"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", cfgPath), zap.Error(err))
	}
	logger.Info("Config loaded", zap.String("path", cfgPath))

	rng := decision.NewRand(time.Now().UnixNano())

	// Decision model, with optional trained weights
	var model *decision.Model
	if cfg.Mind.WeightsPath != "" {
		model = decision.LoadModel(cfg.Mind.WeightsPath, rng, logger)
	} else {
		model = decision.NewModel(rng)
	}

	// Initialize PostgreSQL store
	var pgStore *pgstore.Store
	if cfg.Database.Postgres.DSN != "" {
		ps, pgErr := pgstore.New(cfg.Database.Postgres.DSN, logger)
		if pgErr != nil {
			logger.Warn("PostgreSQL unavailable, running without persistence", zap.Error(pgErr))
		} else {
			if mErr := ps.Migrate(context.Background(), "migrations"); mErr != nil {
				logger.Fatal("migration failed", zap.Error(mErr))
			}
			pgStore = ps
		}
	}

	// Initialize Redis interaction history
	var history *pgstore.History
	if cfg.Database.Redis.URL != "" {
		hs, hErr := pgstore.NewHistory(cfg.Database.Redis.URL, cfg.Mind.HistoryLimit, logger)
		if hErr != nil {
			logger.Warn("Redis unavailable, running without interaction history", zap.Error(hErr))
		} else {
			history = hs
		}
	}

	// Registry, loading persisted creatures
	registry := creature.NewRegistry(logger)
	if pgStore != nil {
		creatures, loadErr := pgStore.ListCreatures(context.Background())
		if loadErr != nil {
			logger.Warn("failed to load creatures from DB", zap.Error(loadErr))
		} else {
			for _, c := range creatures {
				registry.Register(c)
			}
			logger.Info("Loaded creatures from DB", zap.Int("count", len(creatures)))
		}
	}

	// Lifecycle: idle decay and personality settling between interactions
	clock := lifecycle.NewClock(time.Second, 1.0, logger)
	heartbeat := lifecycle.NewHeartbeat(time.Minute, registry, logger)
	clock.AddListener(heartbeat)
	clock.Start()

	// Build HTTP handler
	handler := api.NewHandler(registry, pgStore, history, model,
		cfg.Mind.TranslationPolicy, cfg.Mind.Temperature, rng, logger)

	// Start server
	port := fmt.Sprintf("%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("Creature Mind listening", zap.String("port", port))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down Creature Mind...")
	clock.Stop()
	srv.Shutdown(context.Background())
	if history != nil {
		history.Close()
	}
	if pgStore != nil {
		pgStore.Close()
	}
}
