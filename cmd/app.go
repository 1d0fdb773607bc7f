package cmd

import (
	"fmt"

	"precache-manager/core/config"
	"precache-manager/core/content"
	"precache-manager/core/database"
	"precache-manager/core/host"
	"precache-manager/core/logger"
	"precache-manager/core/storage"
	"precache-manager/feature/fastdl"
	"precache-manager/feature/precache"

	"go.uber.org/zap"
)

// application bundles the services shared by the commands.
type application struct {
	cfg      *config.Config
	logger   *zap.Logger
	resolver *content.Resolver
	engine   *host.Recorder
	history  *precache.History
	precache *precache.Service
}

// bootstrap loads configuration and wires the precache service.
// The history database is optional: failures are logged and history stays disabled.
func bootstrap() (*application, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if gameDir != "" {
		cfg.Game.GameDir = gameDir
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	game, err := cfg.Game.Absolute()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve game directory: %w", err)
	}
	resolver := content.NewResolver(game)
	logg = logg.With(zap.String("game_dir", resolver.GameDir()))

	var history *precache.History
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			history = precache.NewHistory(db)
			if err := history.Migrate(); err != nil {
				logg.Warn("History migration failed, history disabled", zap.Error(err))
				history = nil
			}
		}
	}

	engine := host.NewRecorder(logg)
	return &application{
		cfg:      cfg,
		logger:   logg,
		resolver: resolver,
		engine:   engine,
		history:  history,
		precache: precache.NewService(resolver, engine, history, logg),
	}, nil
}

// publisher creates the FastDL publisher, or returns nil when storage is disabled.
func (a *application) publisher() (*fastdl.Service, error) {
	if !a.cfg.Storage.Enabled {
		return nil, nil
	}
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return fastdl.NewService(client, a.cfg.Storage, a.resolver, a.precache, a.logger), nil
}
