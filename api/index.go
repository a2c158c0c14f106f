package handler

import (
	"net/http"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/di"
	"github.com/GioMjds/paynal-prajik/shared/logger"

	"github.com/rs/zerolog/log"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	handler := di.InitializeService().Adaptor()
	handler.ServeHTTP(w, r)
}
