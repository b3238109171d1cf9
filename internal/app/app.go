package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ticoship/rate-service/config"
	"github.com/ticoship/rate-service/internal/http"
)

// InitializeApp creates and wires all application dependencies. The
// returned cleanup releases the cache, audit workers and the database
// connection; call it after the server stops.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	InitializeLogger()

	services := InitializeServices(cfg)
	database := InitializeDatabase(cfg)

	handler := http.NewHandler(services.Calculator, database.Settings,
		http.WithAuditService(database.Audit))
	settingsHandler := http.NewSettingsHandler(database.Settings)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterCircuitBreaker("tariff", services.Breaker)
	if database.MongoDB != nil {
		mongoDB := database.MongoDB
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return mongoDB.Ping(ctx)
		}))
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		AuditService:   database.Audit,
	}
	if cfg.Auth.JWTSecret != "" {
		routerCfg.JWTSecret = []byte(cfg.Auth.JWTSecret)
	}

	router := http.NewRouter(handler, settingsHandler, healthHandler, routerCfg)

	cleanup := func() {
		if services.Cache != nil {
			services.Cache.Stop()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.Close(ctx)
	}

	return router, cleanup
}
