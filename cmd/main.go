package main

import "github.com/kohakudev/minutes-api/internal/app"

func main() {
	logger := app.NewDefaultLogger()
	cfg := app.MustReadConfig(logger)
	logger = app.MustNewApplicationLogger(cfg, logger)

	pool := app.MustConnectPostgres(cfg, logger)
	defer app.DisconnectPostgres(pool, logger)
	app.MustMigratePostgres(pool, logger)

	app.MustListenAndServeHTTP(cfg, logger, pool)
}
