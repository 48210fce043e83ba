package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"profix/internal/api"
	"profix/internal/config"
	"profix/internal/logging"
	"profix/internal/metrics"
	"profix/internal/session"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

// app is everything a subcommand needs.
type app struct {
	cfg      *config.Config
	logger   *zerolog.Logger
	client   *api.Client
	chat     *api.ChatClient
	sessions *session.Manager
	out      io.Writer
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(os.Stdout)
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}

	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func() { _ = closer.Close() })()
	}

	redisClient, redisUp := initRedis(cfg, &logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	store, storeCloser, err := session.OpenStore(cfg.Session, redisClient, &logger)
	if err != nil {
		logger.Error().Err(err).Str("store", cfg.Session.Store).Msg("open session store")
		return err
	}
	if storeCloser != nil {
		defer (func() { _ = storeCloser.Close() })()
	}

	client := api.NewClient(cfg.Backend, &logger)
	if redisUp {
		client.UseRedisCache(redisClient, cfg.Backend.CatalogTTL)
	}

	a := &app{
		cfg:      cfg,
		logger:   &logger,
		client:   client,
		chat:     api.NewChatClient(cfg.Backend, &logger),
		sessions: session.NewManager(store, cfg.Session.TTL, &logger),
		out:      os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cmd.serveMetrics {
		startMetrics(ctx, cfg, &logger)
	}

	err = cmd.run(ctx, a, args[1:])
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: profixctl <command> [flags]")
	fmt.Fprintln(w)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-16s %s\n", name, commands[name].summary)
	}
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "profixctl").Logger()

	return cfg, logger, closer, nil
}

// initRedis connects when an address is configured. An unreachable server
// disables the catalog cache; a redis session store keeps the client so its
// failover store can recover once the server is back.
func initRedis(cfg *config.Config, logger *zerolog.Logger) (*redis.Client, bool) {
	if cfg.Redis.Address == "" {
		return nil, false
	}

	redisClient := session.NewRedisClient(cfg.Redis)
	if err := session.Ping(context.Background(), redisClient); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, continuing without redis cache")
		if cfg.Session.Store == config.SessionStoreRedis {
			return redisClient, false
		}
		_ = redisClient.Close()
		return nil, false
	}

	logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
	return redisClient, true
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, logger)
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	logger.Info().Int("port", port).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
