package main

import (
	"context"
	"log"

	"curalink-client/logger"
	"curalink-client/src/api"
	"curalink-client/src/config"
	"curalink-client/src/controller"
	"curalink-client/src/dashboard"
	"curalink-client/src/models"
	"curalink-client/src/session"
	"curalink-client/src/store"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := loadConfig()
	logger.Init(cfg.LogLevel)

	client := api.NewClient(cfg, logger.Logger)
	sessions := session.NewManager(client, client, newStore(cfg), logger.Logger)

	ctx := context.Background()
	if err := sessions.Restore(ctx); err != nil {
		logger.Logger.WithError(err).Fatal("Failed to restore session")
	}

	if !sessions.IsAuthenticated() {
		logger.Logger.Info("No active session; log in through the shell to continue")
		return
	}

	identity := sessions.Identity()
	logger.Logger.WithFields(logrus.Fields{
		"email": identity.Email,
		"role":  identity.Role,
		"route": identity.Role.DashboardRoute(),
	}).Info("Session active")

	switch identity.Role {
	case models.RoleResearcher:
		trials := controller.NewTrialController(client, logger.Logger)
		shell := dashboard.NewResearcherDashboard(trials, logger.Logger)
		if err := trials.Load(ctx); err != nil {
			logger.Logger.WithError(err).Warn("Trials are unavailable right now")
		}
		stats := shell.Stats()
		logger.Logger.WithFields(logrus.Fields{
			"total":      stats.Total,
			"active":     stats.ByStatus[models.StatusActive],
			"recruiting": stats.ByStatus[models.StatusRecruiting],
		}).Info("Researcher dashboard ready")
	default:
		shell := dashboard.NewPatientDashboard(client, logger.Logger)
		for _, sec := range dashboard.PatientSections() {
			logger.Logger.WithFields(logrus.Fields{
				"section": sec,
				"ready":   shell.SectionReady(sec),
			}).Debug("Patient section")
		}
		logger.Logger.Info("Patient dashboard ready")
	}
}

func loadConfig() config.Config {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

func newStore(cfg config.Config) store.Store {
	if cfg.RedisAddr != "" {
		return store.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}
	return store.NewFileStore(cfg.SessionFile)
}
