package main

import (
	"clubhouse/config"
	"clubhouse/di"
	"clubhouse/shared/logger"
	"clubhouse/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize club timezone")
	}

	http := di.InitializeService()
	http.Serve()
}
