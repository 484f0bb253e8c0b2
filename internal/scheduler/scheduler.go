package scheduler

import (
	"context"
	"log/slog"

	"github.com/lostfound-vn/backend/internal/config"
	"github.com/lostfound-vn/backend/internal/services"
	"github.com/robfig/cron/v3"
)

// Start wires the reconciler sweeps onto their wall-clock schedules:
// subscriptions daily just after midnight, boosts hourly. The returned cron
// must be stopped on shutdown.
func Start(cfg *config.Config, reconciler *services.ReconcilerService) (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(cfg.SubscriptionSweepSpec, func() {
		slog.Info("running expired subscriptions check")
		reconciler.SweepSubscriptions(context.Background())
	}); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(cfg.BoostSweepSpec, func() {
		slog.Info("running expired boosts check")
		reconciler.SweepBoosts(context.Background())
	}); err != nil {
		return nil, err
	}

	c.Start()
	slog.Info("reconciler scheduler started",
		"subscription_sweep", cfg.SubscriptionSweepSpec,
		"boost_sweep", cfg.BoostSweepSpec,
	)
	return c, nil
}
