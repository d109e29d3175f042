package app

import (
	"github.com/rs/zerolog"

	_ "github.com/joho/godotenv/autoload"

	"github.com/kohakudev/minutes-api/internal/config"
)

func MustReadConfig(logger zerolog.Logger) *config.Config {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	logger.Info().
		Str("env", cfg.Env).
		Msg("read env")

	return cfg
}
