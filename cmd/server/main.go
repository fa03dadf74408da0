package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/config"
	httpapi "github.com/asdfghjkl1994/Frost-Tesh/internal/http"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/line"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/metrics"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/notify"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/store"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "booking-backend").Logger()

	ctx := context.Background()

	var (
		bookings    store.BookingStore
		emergencies store.EmergencyStore
	)
	deps := httpapi.Deps{}
	switch cfg.StoreBackend {
	case "postgres":
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect postgres")
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure schema")
		}
		bookings = pg.Bookings()
		emergencies = pg.Emergencies()
		deps.StorePinger = pg
		logger.Info().Msg("using postgres store")
	case "redis":
		rd := store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rd.Ping(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer rd.Close()
		bookings = rd.Bookings()
		emergencies = rd.Emergencies()
		deps.StorePinger = rd
		logger.Info().Msg("using redis store")
	default:
		bookings = store.NewMemoryBookings()
		emergencies = store.NewMemoryEmergencies()
		logger.Info().Msg("using in-memory store")
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	lineClient := &line.Client{BaseURL: cfg.LineAPIBase, Token: cfg.LineToken}

	deps.Bookings = bookings
	deps.Emergencies = emergencies
	deps.Metrics = m
	deps.Registry = registry
	deps.Dispatcher = &notify.Dispatcher{
		Client:    lineClient,
		Recipient: cfg.LineRecipient,
		Timeout:   cfg.NotifyTimeout,
		Logger:    logger,
		Metrics:   m,
	}
	deps.Responder = &webhook.Responder{
		Client:       lineClient,
		BaseURL:      cfg.BaseURL,
		ContactPhone: cfg.ContactPhone,
		Logger:       logger,
		Metrics:      m,
	}

	router := httpapi.Router(cfg, deps, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
