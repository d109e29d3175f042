package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kohakudev/minutes-api/internal/config"
	v1 "github.com/kohakudev/minutes-api/internal/delivery/http/v1"
	"github.com/kohakudev/minutes-api/internal/services"
)

func MustListenAndServeHTTP(cfg *config.Config, logger zerolog.Logger, pool *pgxpool.Pool) {
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = httpCfg.CORSAllowOrigins
	corsCfg.AllowCredentials = true
	router.Use(cors.New(corsCfg))

	registerRoutes(router, logger, pool)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	logger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter, logger zerolog.Logger, pool *pgxpool.Pool) {
	handler := v1.New(
		logger,
		services.NewMeetingService(logger, pool),
		services.NewTaskService(logger, pool),
	)

	router.GET("/", handler.HandleRoot)

	api := router.Group("/api")
	api.Use(handler.HandleRequestIDMiddleware)

	meetings := api.Group("/meetings")
	meetings.POST("", handler.HandleCreateMeeting)
	meetings.GET("", handler.HandleGetMeetings)
	meetings.GET("/:id", handler.HandleGetMeeting)
	meetings.PUT("/:id", handler.HandleUpdateMeeting)
	meetings.DELETE("/:id", handler.HandleDeleteMeeting)
	meetings.POST("/:id/tasks", handler.HandleCreateTask)
	meetings.GET("/:id/tasks", handler.HandleGetTasks)

	tasks := api.Group("/tasks")
	tasks.PUT("/:id", handler.HandleUpdateTask)
	tasks.DELETE("/:id", handler.HandleDeleteTask)
}
