package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"tipline/internal/audit"
	faqhandler "tipline/internal/faq/handler"
	faqservice "tipline/internal/faq/service"
	faqstore "tipline/internal/faq/store/faq"
	"tipline/internal/jwttoken"
	"tipline/internal/platform/config"
	"tipline/internal/platform/httpserver"
	"tipline/internal/platform/logger"
	"tipline/internal/platform/metrics"
	platformredis "tipline/internal/platform/redis"
	"tipline/internal/platform/scheduler"
	tipshandler "tipline/internal/tips/handler"
	tipmetrics "tipline/internal/tips/metrics"
	tipsservice "tipline/internal/tips/service"
	tipstore "tipline/internal/tips/store/tip"
	httptransport "tipline/internal/transport/http"
)

const auditInboxSize = 256

// main wires high-level dependencies and supervises the process lifecycle.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthChecks := map[string]httptransport.HealthCheck{}

	// Storage. Postgres when configured, in-memory otherwise so the server
	// can run without any backing services in development.
	var (
		tipStore tipsservice.TipStore
		tipQuery tipsservice.TipQuery
		faqStore faqservice.FAQStore
	)
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping postgres: %w", err)
		}
		tipStore = tipstore.NewPostgres(db)
		tipQuery = tipstore.NewPostgresQuery(db)
		faqStore = faqstore.NewPostgres(db)
		healthChecks["postgres"] = db.PingContext
		log.Info("using postgres storage")
	} else {
		memory := tipstore.NewInMemory()
		tipStore = memory
		tipQuery = memory.Query()
		faqStore = faqstore.NewInMemory()
		log.Warn("POSTGRES_URL not set, using in-memory storage")
	}

	// Projection cache, optional.
	rdb, err := platformredis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
		tipQuery = tipstore.NewCachedQuery(tipQuery, rdb.Client, tipstore.WithCacheLogger(log))
		tipStore = tipstore.NewInvalidatingStore(tipStore, rdb.Client, log)
		healthChecks["redis"] = rdb.Health
		log.Info("projection cache enabled")
	}

	// Audit trail. Kafka when brokers are configured, in-memory otherwise.
	var auditSink audit.Store = audit.NewInMemoryStore()
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return fmt.Errorf("connect kafka: %w", err)
		}
		defer kafkaSink.Close()
		auditSink = kafkaSink
		log.Info("audit trail publishing to kafka", "topic", cfg.KafkaTopic)
	}
	auditInbox := make(chan audit.Event, auditInboxSize)
	auditPublisher := audit.NewPublisher(auditInbox, log)
	auditWorker := audit.NewWorker(auditSink, auditInbox, log)

	tipsSvc := tipsservice.New(tipStore, tipQuery,
		tipsservice.WithLogger(log),
		tipsservice.WithMetrics(tipmetrics.New()),
		tipsservice.WithAuditPublisher(auditPublisher),
	)
	faqSvc := faqservice.New(faqStore,
		faqservice.WithLogger(log),
		faqservice.WithAuditPublisher(auditPublisher),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "tipline", "tipline")
	validator := jwttoken.NewJWTServiceAdapter(jwtService)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:  log,
		Metrics: metrics.New(),
		Handlers: []httptransport.Registrar{
			tipshandler.New(tipsSvc, log, validator),
			faqhandler.New(faqSvc, log, cfg.AdminToken),
		},
		HealthChecks: healthChecks,
	})

	srv := httpserver.New(cfg.Addr, router)
	sweep := scheduler.New("tip-expiration-sweep", tipsSvc.SweepExpirations, cfg.SweepInterval, log)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error { return ignoreCanceled(auditWorker.Run(ctx)) })
	g.Go(func() error { return ignoreCanceled(sweep.Run(ctx)) })

	return g.Wait()
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
