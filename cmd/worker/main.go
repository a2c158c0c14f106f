package main

import (
	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/di"
	"github.com/GioMjds/paynal-prajik/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	worker := di.InitializeWorker()
	worker.Serve()
}
