// Package main is the entry point for the rate-service application.
//
// @title           Correos de Costa Rica Rate Service API
// @version         1.0.0
// @description     API for quoting shipping rates through Correos de Costa Rica.
//
//	The service aggregates cart weight, queries the carrier's tariff
//	web service and applies the configured pricing rules per shipping
//	method variant.
//
// @contact.name   API Support
// @contact.url    https://github.com/ticoship/rate-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token for settings management.
//
// @tag.name        Quotes
// @tag.description Shipping rate quoting operations
//
// @tag.name        Settings
// @tag.description Shipping method configuration endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/ticoship/rate-service/docs" // swagger docs

	"github.com/rs/zerolog/log"
	"github.com/ticoship/rate-service/config"
	"github.com/ticoship/rate-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
