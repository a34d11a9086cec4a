// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"identikit/internal/apikey"
	"identikit/internal/audit"
	"identikit/internal/history"
	"identikit/internal/identity"
	"identikit/internal/identity/chain"
	"identikit/internal/identity/llm"
	"identikit/internal/identity/synth"
	"identikit/internal/platform/config"
	"identikit/internal/platform/httpserver"
	"identikit/internal/platform/logger"
	"identikit/internal/platform/metrics"
	platformredis "identikit/internal/platform/redis"
	"identikit/internal/realmail"
	httptransport "identikit/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx := context.Background()
	m := metrics.New()

	redisClient, err := platformredis.New(cfg.RedisURL, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("redis connected")
	}

	// History store: Postgres when a DSN is configured, in-memory otherwise.
	var store history.Store
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		pg := history.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		store = pg
		log.Info("postgres history store ready")
	} else {
		store = history.NewMemoryStore()
		log.Info("using in-memory history store")
	}

	// The chain tip picks up where the history log left off.
	lastHash, err := store.LastHash(ctx)
	if err != nil {
		return err
	}
	var tips chain.TipStore
	if redisClient != nil {
		redisTips := chain.NewRedisTipStore(redisClient)
		if err := redisTips.Seed(ctx, lastHash); err != nil {
			return err
		}
		tips = redisTips
	} else {
		tips = chain.NewMemoryTipStore(lastHash)
	}

	// Audit: events always land in memory; Kafka ships them out when brokers
	// are configured.
	publisher := audit.NewPublisher(audit.NewMemoryStore())
	if len(cfg.KafkaBrokers) > 0 {
		sink, err := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			return err
		}
		defer sink.Close()
		inbox := make(chan audit.Event, 256)
		publisher.Forward(inbox)
		worker := audit.NewWorker(sink, inbox, log)
		workerCtx, stopWorker := context.WithCancel(ctx)
		defer stopWorker()
		go func() {
			if err := worker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("audit worker stopped", slog.String("error", err.Error()))
			}
		}()
		log.Info("audit kafka sink enabled", slog.String("topic", cfg.AuditTopic))
	}

	identityOpts := []identity.Option{
		identity.WithHistory(store),
		identity.WithAudit(publisher),
		identity.WithMetrics(m),
		identity.WithGeneratorTimeout(cfg.Generator.Timeout),
	}
	if cfg.Generator.APIKey != "" {
		identityOpts = append(identityOpts, identity.WithGenerator(llm.NewClient(cfg.Generator, log)))
		log.Info("external generator enabled", slog.String("model", cfg.Generator.Model))
	}
	identityService := identity.NewService(synth.New(), tips, log, identityOpts...)

	var revocations apikey.RevocationList
	if redisClient != nil {
		revocations = apikey.NewRedisRevocationList(redisClient.Client)
	} else {
		revocations = apikey.NewMemoryRevocationList()
	}
	keyService := apikey.NewService(cfg.KeySigningSecret, revocations,
		apikey.WithTTL(cfg.KeyTTL),
		apikey.WithMetrics(m))

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:   log,
		Metrics:  m,
		Identity: identityService,
		History:  store,
		Emails:   realmail.NewPool(),
		Keys:     keyService,
	})

	srv := httpserver.New(cfg.Addr, router, cfg.HTTP)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
