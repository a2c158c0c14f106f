package main

import (
	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/di"
	"github.com/GioMjds/paynal-prajik/helper"
	"github.com/GioMjds/paynal-prajik/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Paynal Prajik Booking API
// @version 1.0
// @description Room and venue booking backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
