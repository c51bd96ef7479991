package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	_ "github.com/postosaude/clinic-api/docs"
	"github.com/postosaude/clinic-api/internal/api"
	"github.com/postosaude/clinic-api/internal/core/ports"
	"github.com/postosaude/clinic-api/internal/core/service"
	mongodb "github.com/postosaude/clinic-api/internal/infrastructure/db/mongo"
	redisdb "github.com/postosaude/clinic-api/internal/infrastructure/db/redis"
	"github.com/postosaude/clinic-api/internal/infrastructure/http/handlers"
	"github.com/postosaude/clinic-api/internal/pkg/config"
	"github.com/postosaude/clinic-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       Sistema de Saúde API
// @version                     1.0.0
// @description                 Clinic backend: appointments, medication inventory and health posts.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "clinic-api",
		Env:     cfg.Env,
	})

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Env,
			TracesSampleRate: 0.2,
		}); err != nil {
			log.Error().Err(err).Msg("sentry init failed")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	var dedup ports.DedupStore = redisdb.NopDedupStore{}
	var redisPing handlers.PingFunc
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, stock request dedup disabled")
		} else {
			defer rdb.Close()
			dedup = redisdb.NewDedupStore(rdb)
			redisPing = handlers.RedisPing(rdb)
		}
	}

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	doctors := mongodb.NewDoctorRepository(db)
	facilities := mongodb.NewFacilityRepository(db)
	medications := mongodb.NewMedicationRepository(db)
	appointments := mongodb.NewAppointmentRepository(db)
	stockRequests := mongodb.NewStockRequestRepository(db)

	// --- Services ---
	authService := service.NewAuthService(users, service.AuthOptions{
		JWTSecret:  cfg.Auth.JWTSecret,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	}, log)

	e := api.NewRouter(api.Dependencies{
		Auth:           authService,
		Authenticator:  authService,
		Users:          service.NewUserService(users),
		Directory:      service.NewDirectoryService(doctors, facilities),
		Medications:    service.NewMedicationService(medications, facilities, log),
		Appointments:   service.NewAppointmentService(appointments, doctors, log),
		StockRequests:  service.NewStockRequestService(stockRequests, medications, facilities, dedup, cfg.Redis.DedupTTL, log),
		Dashboard:      service.NewDashboardService(appointments, medications, doctors),
		Health:         handlers.NewHealthHandler(handlers.MongoPing(client), redisPing),
		AllowedOrigins: cfg.AllowedOrigins(),
		Logger:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdown(e.Shutdown, log)
}

func shutdown(fn func(context.Context) error, log zerolog.Logger) {
	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}
