// Package api implements app.Runner for the explorer API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apphttp "github.com/ontio/explorer-nodes/pkg/app/http"
	"github.com/ontio/explorer-nodes/pkg/config"
	nodeservice "github.com/ontio/explorer-nodes/pkg/node/service"
	"github.com/ontio/explorer-nodes/pkg/nodestore"
	"github.com/ontio/explorer-nodes/pkg/pgutil"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting explorer API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Bool("degrade_on_error", cfg.Nodes.DegradeOnError),
	)

	db, err := s.openDB(ctx, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	svc := NewNodeService(nodestore.NewStore(db), cfg.Nodes, logger)
	router := NewRouter(svc, db, cfg, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) openDB(ctx context.Context, logger *zap.Logger) (*bun.DB, error) {
	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", s.cfg.Database.Host),
		zap.String("database", s.cfg.Database.Database),
	)
	return db, nil
}

// NewNodeService builds the decorated node service. Metrics wrap the core
// service, logging wraps metrics, and the fallback shim is outermost when
// degrade_on_error is set.
func NewNodeService(store nodeservice.Store, cfg config.NodesConfig, logger *zap.Logger) nodeservice.Service {
	svc := nodeservice.NewService(store)
	svc = nodeservice.NewInstrumented(svc)
	svc = nodeservice.NewLog(svc, logger)
	if cfg.DegradeOnError {
		svc = nodeservice.NewFallback(svc, logger)
	}
	return svc
}

// NewRouter mounts the node routes together with health, readiness and
// metrics endpoints.
func NewRouter(svc nodeservice.Service, db Pinger, cfg *config.Config, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	nodeservice.RegisterRoutes(r, svc, logger)

	return r
}
