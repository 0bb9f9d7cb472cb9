package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "review_portal/internal/adapters/http_server"
	"review_portal/internal/adapters/observability"
	redisad "review_portal/internal/adapters/redis"
	"review_portal/internal/adapters/reviewapi"
	"review_portal/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	if _, _, err := observability.Serve(cfg.MetricsAddr, reg); err != nil {
		log.Fatal().Err(err).Msg("metrics server failed to start")
	}

	// sessions
	sessions := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionTTL)
	defer sessions.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := sessions.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed, sessions will reset")
	} else {
		log.Info().Msg("redis connection ok")
	}
	cancel()

	// deps
	api, err := reviewapi.New(cfg.APIBase, cfg.APIRPS, cfg.APITimeout)
	if err != nil {
		log.Fatal().Err(err).Str("base", cfg.APIBase).Msg("failed to initialize reviews API client")
	}

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{API: api, Sessions: sessions, Loc: time.Local})

	log.Info().Str("addr", cfg.HTTPAddr).Str("api", api.BaseURL()).Msg("review portal listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
