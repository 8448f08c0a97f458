// Command server runs the Bar Figueiras reservation API.
//
//	@title						Bar Figueiras Reservas API
//	@version					1.0
//	@description				Reservation management for Bar Figueiras.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/api"
	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
	"github.com/barfigueiras/reservas/internal/core/service"
	mongostore "github.com/barfigueiras/reservas/internal/infrastructure/db/mongo"
	redisstore "github.com/barfigueiras/reservas/internal/infrastructure/db/redis"
	"github.com/barfigueiras/reservas/internal/infrastructure/db/sqlite"
	"github.com/barfigueiras/reservas/internal/infrastructure/gateway"
	"github.com/barfigueiras/reservas/internal/infrastructure/gateway/gemini"
	"github.com/barfigueiras/reservas/internal/infrastructure/memory"
	"github.com/barfigueiras/reservas/internal/infrastructure/messaging"
	"github.com/barfigueiras/reservas/internal/infrastructure/messaging/amqp"
	"github.com/barfigueiras/reservas/internal/infrastructure/messaging/nats"
	"github.com/barfigueiras/reservas/internal/infrastructure/queue"
	"github.com/barfigueiras/reservas/internal/pkg/config"
	"github.com/barfigueiras/reservas/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "reservas",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close resource")
			}
		}
	}()

	b := &backends{cfg: cfg, log: log}
	collections, err := b.collectionStore(ctx)
	if err != nil {
		return err
	}
	sessions, pendingStore, suggestionStore, err := b.stateStores(ctx)
	if err != nil {
		return err
	}
	closers = append(closers, b.closers...)

	publisher, err := newPublisher(cfg.Events)
	if err != nil {
		return err
	}
	closers = append(closers, publisher)

	suggestionGateway, err := newGateway(ctx, cfg)
	if err != nil {
		return err
	}

	// --- Services ---
	var creds service.Credentials = service.PlainCredentials{}
	if cfg.Auth.PasswordHashing {
		creds = service.BcryptCredentials{}
	}
	authService := service.NewAuthService(collections, sessions, pendingStore, service.AuthOptions{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.Auth.SessionTTL,
		Seed: domain.User{
			Name:          "Admin",
			Establishment: cfg.Venue.Name,
			Password:      cfg.Auth.AdminPassword,
		},
		Credentials: creds,
	}, logger.Component("auth"))
	if err := authService.Load(ctx); err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	reservationService := service.NewReservationService(collections,
		domain.NewOccasionSet(cfg.Venue.ExtraOccasions...), publisher, logger.Component("reservations"))
	if err := reservationService.Load(ctx); err != nil {
		return fmt.Errorf("load reservations: %w", err)
	}

	dispatcher := queue.NewDispatcher(cfg.Suggestion.Workers, logger.Component("dispatcher"))
	suggestionService := service.NewSuggestionService(suggestionStore, suggestionGateway, dispatcher, logger.Component("suggestions"))
	pendingService := service.NewPendingService(pendingStore, reservationService, suggestionService, logger.Component("pending"))

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx, suggestionService)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		JWTSecret:    cfg.JWTSecret,
		Log:          logger.Component("http"),
		Auth:         authService,
		Reservations: reservationService,
		Pending:      pendingService,
		Suggestions:  suggestionService,
		Navigation:   service.NewNavigationService(pendingService),
		Probes:       b.probes,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Driver).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		stopWorkers()
		dispatcher.Wait()
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}

	stopWorkers()
	dispatcher.Wait()
	log.Info().Msg("server stopped")
	return nil
}

// backends opens the configured stores and remembers what must be pinged
// and closed.
type backends struct {
	cfg     *config.Config
	log     zerolog.Logger
	redis   *goredis.Client
	probes  map[string]ports.Pinger
	closers []io.Closer
}

func (b *backends) redisClient(ctx context.Context) (*goredis.Client, error) {
	if b.redis != nil {
		return b.redis, nil
	}
	client, err := redisstore.Connect(ctx, redisstore.Config{Addr: b.cfg.Redis.Addr, DB: b.cfg.Redis.DB})
	if err != nil {
		return nil, err
	}
	b.redis = client
	b.closers = append(b.closers, client)
	return client, nil
}

func (b *backends) probe(name string, p ports.Pinger) {
	if b.probes == nil {
		b.probes = make(map[string]ports.Pinger)
	}
	b.probes[name] = p
}

func (b *backends) collectionStore(ctx context.Context) (ports.CollectionStore, error) {
	switch b.cfg.Store.Driver {
	case "redis":
		client, err := b.redisClient(ctx)
		if err != nil {
			return nil, err
		}
		store := redisstore.NewCollectionStore(client, b.cfg.Redis.Prefix)
		b.probe("redis", store)
		return store, nil

	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:         b.cfg.Mongo.URI,
			Database:    b.cfg.Mongo.Database,
			Timeout:     b.cfg.Mongo.Timeout,
			MaxPoolSize: b.cfg.Mongo.MaxPoolSize,
		})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, closerFunc(func() error {
			return client.Disconnect(context.Background())
		}))
		store := mongostore.NewCollectionStore(db)
		b.probe("mongodb", store)
		return store, nil

	case "sqlite":
		db, err := sqlite.Open(sqlite.Config{Path: b.cfg.SQLite.Path})
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			b.closers = append(b.closers, sqlDB)
		}
		store := sqlite.NewCollectionStore(db)
		b.probe("sqlite", store)
		return store, nil

	case "memory":
		b.log.Warn().Msg("STORE_DRIVER=memory: users and reservations are lost on restart")
		return memory.NewCollectionStore(), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", b.cfg.Store.Driver)
	}
}

func (b *backends) stateStores(ctx context.Context) (ports.SessionStore, ports.PendingStore, ports.SuggestionStore, error) {
	if b.cfg.Store.StateDriver != "redis" {
		return memory.NewSessionStore(), memory.NewPendingStore(), memory.NewSuggestionStore(), nil
	}
	client, err := b.redisClient(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	prefix := b.cfg.Redis.Prefix
	b.probe("redis", redisstore.NewCollectionStore(client, prefix))
	return redisstore.NewSessionStore(client, prefix),
		redisstore.NewPendingStore(client, prefix, b.cfg.Auth.SessionTTL),
		redisstore.NewSuggestionStore(client, prefix, 0),
		nil
}

func newPublisher(cfg config.EventsConfig) (ports.EventPublisher, error) {
	switch cfg.Driver {
	case "amqp":
		p, err := amqp.Dial(cfg.AMQPURL, cfg.Topic)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "nats":
		p, err := nats.Connect(cfg.NATSURL, cfg.Topic)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return messaging.Noop{}, nil
	}
}

func newGateway(ctx context.Context, cfg *config.Config) (ports.SuggestionGateway, error) {
	if cfg.Suggestion.Provider != "gemini" {
		return gateway.Disabled{}, nil
	}
	g, err := gemini.New(ctx, gemini.Config{
		APIKey:        cfg.Suggestion.APIKey,
		Model:         cfg.Suggestion.Model,
		Venue:         cfg.Venue.Name,
		Timeout:       cfg.Suggestion.Timeout,
		RatePerMinute: cfg.Suggestion.RatePerMinute,
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
