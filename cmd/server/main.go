package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"hospital-scheduler/internal/config"
	gweb "hospital-scheduler/internal/grpcweb"
	"hospital-scheduler/internal/handler"
	"hospital-scheduler/internal/logger"
	"hospital-scheduler/internal/metrics"
	"hospital-scheduler/internal/middleware"
	"hospital-scheduler/internal/rpc"
	"hospital-scheduler/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital appointment scheduling server",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC and grpc-web servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg, log)
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()
			if cfg.StoreDriver != config.DriverPostgres {
				return fmt.Errorf("migrations need STORE_DRIVER=%s", config.DriverPostgres)
			}

			pool, err := store.NewPool(cmd.Context(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := store.Migrate(cmd.Context(), pool, cfg.MigrationsDir)
			for _, name := range applied {
				log.Info("migration applied", zap.String("file", name))
			}
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				log.Info("schema up to date")
			}
			return nil
		},
	})
	return cmd
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	log = log.With(zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))
	return cfg, log, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (handler.Store, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Warn("using in-memory store; data is lost on exit")
		return store.NewMemory(), func() {}, nil
	}

	pool, err := store.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, nil, err
	}
	log.Info("connected to postgres")

	applied, err := store.Migrate(ctx, pool, cfg.MigrationsDir)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	if len(applied) > 0 {
		log.Info("migrations applied", zap.Strings("files", applied))
	}
	return store.New(pool), pool.Close, nil
}

func runServer(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	st, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	m := metrics.NewCollector(cfg.ServiceName)
	h := handler.New(st, log, m)

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.Run(ctx)

	srv := grpc.NewServer(
		grpc.ForceServerCodec(rpc.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.Logging(log.Named("rpc")),
			middleware.Metrics(m),
			middleware.RateLimit(rl, m),
		),
	)
	rpc.RegisterHospitalServer(srv, h)

	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	errc := make(chan error, 2)
	go func() {
		log.Info("grpc listening", zap.String("port", cfg.Port))
		errc <- srv.Serve(lis)
	}()

	// grpc-web bridge forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:"+cfg.Port, log.Named("grpcweb"))
	if err != nil {
		srv.Stop()
		return err
	}
	defer bridge.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/", bridge.Handler())

	httpSrv := &http.Server{
		Addr:              ":" + cfg.WebPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("grpc-web listening", zap.String("port", cfg.WebPort))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errc:
		log.Error("server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	srv.GracefulStop()
	return err
}
