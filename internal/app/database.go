package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ticoship/rate-service/config"
	"github.com/ticoship/rate-service/internal/repository"
	"github.com/ticoship/rate-service/internal/service"
)

// DatabaseComponents holds the persistence-backed services. All fields
// are usable when MongoDB is disabled: settings fall back to defaults and
// the audit service is nil.
type DatabaseComponents struct {
	MongoDB  *repository.MongoDB
	Settings service.SettingsService
	Audit    service.AuditService
}

// InitializeDatabase connects to MongoDB when enabled and wires the
// settings and audit services. A connection failure is not fatal: the
// service runs with defaults and without audit persistence.
func InitializeDatabase(cfg config.Config) *DatabaseComponents {
	defaults := MethodDefaults(cfg.Methods)

	if !cfg.Database.Enabled {
		return &DatabaseComponents{
			Settings: service.NewSettingsService(nil, service.WithDefaults(defaults)),
		}
	}

	mongoDB, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("MongoDB connection failed, running without persistence")
		return &DatabaseComponents{
			Settings: service.NewSettingsService(nil, service.WithDefaults(defaults)),
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ttlDays := int(cfg.Database.LogsTTL.Hours() / 24)
	if ttlDays < 1 {
		ttlDays = 1
	}
	if err := mongoDB.SetLogsTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set audit log TTL index")
	}

	settingsRepo := repository.NewSettingsRepository(mongoDB.Settings)
	auditRepo := repository.NewAuditRepository(mongoDB.Logs, mongoDB.Quotes)

	return &DatabaseComponents{
		MongoDB:  mongoDB,
		Settings: service.NewSettingsService(settingsRepo, service.WithDefaults(defaults)),
		Audit:    service.NewAuditService(auditRepo, service.DefaultAuditConfig()),
	}
}

// Close releases the database resources.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d.Audit != nil {
		d.Audit.Stop()
	}
	if d.MongoDB != nil {
		if err := d.MongoDB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("MongoDB disconnect failed")
		}
	}
}
