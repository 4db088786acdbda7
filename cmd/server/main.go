package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/hijjiri/todo-grpc/internal/auth"
	"github.com/hijjiri/todo-grpc/internal/config"
	domain_todo "github.com/hijjiri/todo-grpc/internal/domain/todo"
	"github.com/hijjiri/todo-grpc/internal/infrastructure/memory"
	mysqlstore "github.com/hijjiri/todo-grpc/internal/infrastructure/mysql"
	sqlitestore "github.com/hijjiri/todo-grpc/internal/infrastructure/sqlite"
	"github.com/hijjiri/todo-grpc/internal/infrastructure/sqlstore"
	grpcadapter "github.com/hijjiri/todo-grpc/internal/interface/grpc"
	"github.com/hijjiri/todo-grpc/internal/server"
	"github.com/hijjiri/todo-grpc/internal/telemetry"
	todo_usecase "github.com/hijjiri/todo-grpc/internal/usecase/todo"
)

const shutdownTimeout = 10 * time.Second

//----------------------
// Logger
//----------------------

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = level

	return zc.Build()
}

//----------------------
// Store
//----------------------

type storage struct {
	uow     domain_todo.UnitOfWork
	healthy server.HealthFunc
	db      *sql.DB // memory のときは nil
}

func (s *storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*storage, error) {
	storeCfg := sqlstore.Config{
		Name:               cfg.Store.Driver,
		ReadRetry:          sqlstore.DefaultReadRetry,
		BreakerMaxFailures: cfg.Store.Breaker.MaxFailures,
		BreakerTimeout:     cfg.Store.Breaker.Timeout,
	}

	var db *sql.DB
	var err error

	switch cfg.Store.Driver {
	case config.DriverMemory:
		logger.Info("using in-memory store")
		return &storage{uow: memory.NewStore()}, nil

	case config.DriverMySQL:
		db, err = mysqlstore.Open(ctx, mysqlstore.Config{
			Host:            cfg.DB.Host,
			Port:            cfg.DB.Port,
			User:            cfg.DB.User,
			Password:        cfg.DB.Password,
			Name:            cfg.DB.Name,
			ConnectAttempts: cfg.DB.ConnectAttempts,
			ConnectInterval: cfg.DB.ConnectInterval,
		}, logger)
		storeCfg.Classify = mysqlstore.Classify

	case config.DriverSQLite:
		db, err = sqlitestore.Open(ctx, cfg.Store.SQLite.Path)
		storeCfg.Classify = sqlitestore.Classify
		if err == nil {
			logger.Info("opened SQLite database", zap.String("path", cfg.Store.SQLite.Path))
		}

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	st := sqlstore.New(db, storeCfg, logger)
	return &storage{uow: st, healthy: st.Healthy, db: db}, nil
}

//----------------------
// main
//----------------------

func main() {
	configPath := flag.String("config", os.Getenv(config.EnvConfigFile), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// ---- Logger ----
	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("loaded config",
		zap.String("grpc_addr", cfg.GRPC.Addr),
		zap.String("admin_addr", cfg.Admin.Addr),
		zap.String("store_driver", cfg.Store.Driver),
		zap.Duration("grpc_request_timeout", cfg.GRPC.RequestTimeout),
		zap.Bool("auth_enabled", cfg.Auth.Secret != ""),
		zap.Bool("telemetry_enabled", cfg.Telemetry.Enabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- Telemetry ----
	if cfg.Telemetry.Enabled {
		tp, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
		if err != nil {
			logger.Fatal("failed to init tracer", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Error("tracer shutdown error", zap.Error(err))
			}
		}()
	}

	// ---- Store ----
	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer store.Close()

	// ---- Metrics ----
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if store.db != nil {
		reg.MustRegister(collectors.NewDBStatsCollector(store.db, cfg.Store.Driver))
	}
	metrics, err := grpcadapter.NewMetrics(reg)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	// ---- Todo Service（起動時に seed）----
	uc, err := todo_usecase.New(ctx, store.uow, logger)
	if err != nil {
		logger.Fatal("failed to init todo usecase", zap.Error(err))
	}
	handler := grpcadapter.NewTodoHandler(uc, logger)

	// ---- gRPC Server ----
	opts := server.Options{
		RequestTimeout: cfg.GRPC.RequestTimeout,
		Metrics:        metrics,
		Tracing:        cfg.Telemetry.Enabled,
	}
	if cfg.Auth.Secret != "" {
		opts.Validator = auth.NewAuthenticator(cfg.Auth.Secret, logger)
	}

	healthSrv := health.NewServer()
	grpcServer := server.New(logger, opts, handler, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// ---- admin HTTP サーバ (/metrics, /healthz) ----
	adminSrv := &http.Server{
		Addr:              cfg.Admin.Addr,
		Handler:           server.NewAdminHandler(reg, store.healthy),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("admin server started", zap.String("addr", cfg.Admin.Addr))
		if err := adminSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("admin server error", zap.Error(err))
		}
	}()

	// ---- gRPC サーバ listen ----
	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.GRPC.Addr), zap.Error(err))
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("gRPC server is starting", zap.String("addr", cfg.GRPC.Addr))
		serveErr <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serveErr:
		logger.Error("gRPC server exited with error", zap.Error(err))
	}

	// ---- graceful shutdown ----
	healthSrv.Shutdown()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		logger.Warn("graceful stop timed out, forcing")
		grpcServer.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := adminSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("admin server shutdown error", zap.Error(err))
	}

	logger.Info("shutdown complete")
}
