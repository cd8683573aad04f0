// @title         moodroom API
// @version       0.1.0
// @description   Live classroom sentiment: comments, rolling emotions and the announcer

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodroom/internal/modkit/repokit"
	"moodroom/internal/platform/clock"
	"moodroom/internal/platform/config"
	"moodroom/internal/platform/logger"
	phttp "moodroom/internal/platform/net/http"
	"moodroom/internal/platform/store"
	"moodroom/internal/platform/workers"
	"moodroom/migrations"

	"moodroom/internal/platform/net/middleware"
	"moodroom/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")     // HTTP, auth and docs live under CORE_API_*
	pipeCfg := root.Prefix("PIPELINE_")    // worker pool sizing
	pgCfg := root.Prefix("SERVICE_PGSQL_") // postgres lives under SERVICE_PGSQL_*

	// fail before touching the database
	apiCfg.Require("JWT_SECRET")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// open the platform store and apply migrations
	st, err := store.Open(ctx, store.FromConfig(pgCfg),
		store.WithLogger(*l),
		store.WithMigrations(migrations.FS),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, "postgres", st)

	pool := workers.New(workers.Options{
		Workers: pipeCfg.MayInt("WORKERS", 4),
		Queue:   pipeCfg.MayInt("QUEUE", 256),
		Name:    "pipeline",
	})

	// http server (reads CORE_API_API_PORT)
	// /ping answers before routing so load balancer checks skip auth and logging
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) { m.Use(middleware.Heartbeat("/ping")) })

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Clock:          clock.System{},
			Queue:          pool,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run until a signal, then drain the pipeline before the store closes
	runErr := srv.Run(ctx)

	drain, cancel := context.WithTimeout(context.Background(), pipeCfg.MayDuration("DRAIN_TIMEOUT", 30*time.Second))
	defer cancel()
	if err := pool.Stop(drain); err != nil {
		l.Warn().Err(err).Int("pending", pool.Len()).Msg("pipeline did not drain")
	}
	if runErr != nil {
		l.Error().Err(runErr).Msg("http server stopped")
	}
}
