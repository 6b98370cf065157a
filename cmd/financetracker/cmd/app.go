package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/platform/config"
	"github.com/Basri-akbas/Finance-Tracker/internal/repositories/database/boltstore"
	"github.com/Basri-akbas/Finance-Tracker/internal/repositories/database/pgsql"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils"
	"github.com/Basri-akbas/Finance-Tracker/pkg/database"
)

// app holds what every command needs: configuration, the wired services and their teardown.
type app struct {
	cfg      *config.Config
	services *portssvc.ServiceContainer
	clock    portssvc.Clock
	posthog  *utils.PosthogClientWrapper
	closers  []func()
}

// newApp loads configuration, opens the configured store and wires the services.
// extra options are applied after the defaults.
func newApp(ctx context.Context, extra ...services.ServiceOption) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !debug {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	}
	a := &app{cfg: cfg, clock: services.NewSystemClock(cfg.Location)}

	repos, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.posthog = utils.InitializePosthogClient(cfg.PosthogAPIKey, slog.Default())
	a.closers = append(a.closers, a.posthog.Close)

	options := []services.ServiceOption{
		services.WithClock(a.clock),
		services.WithEventTracker(a.posthog),
	}
	options = append(options, extra...)
	a.services = services.NewServiceContainer(repos, options...)
	return a, nil
}

func (a *app) openStore(ctx context.Context) (repositories.RepositoryProvider, error) {
	switch a.cfg.StoreDriver {
	case config.StorePostgres:
		pool, err := database.NewPgxPool(ctx, a.cfg.DatabaseURL, a.cfg.EnableDBCheck)
		if err != nil {
			return repositories.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		a.closers = append(a.closers, func() { database.ClosePgxPool(pool) })
		return pgsql.NewRepositoryProvider(pool), nil
	default:
		db, err := database.OpenBolt(a.cfg.BoltPath)
		if err != nil {
			return repositories.RepositoryProvider{}, err
		}
		a.closers = append(a.closers, func() { database.CloseBolt(db) })
		store, err := boltstore.New(db)
		if err != nil {
			return repositories.RepositoryProvider{}, fmt.Errorf("failed to prepare bolt store: %w", err)
		}
		return boltstore.NewRepositoryProvider(store), nil
	}
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
