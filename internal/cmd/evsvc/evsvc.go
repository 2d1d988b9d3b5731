// Package evsvc parses evsvc flags and serves the EV engine over HTTP.
package evsvc

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"time"

	"duel_ev/internal/config"
	"duel_ev/internal/httpapi"
	"duel_ev/internal/logging"

	"go.uber.org/zap"
)

// Config holds evsvc configuration.
type Config struct {
	Addr            string        `env:"EVSVC_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"EVSVC_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"EVSVC_LOG_LEVEL" envDefault:"info"`
	LogJSON         bool          `env:"EVSVC_LOG_JSON" envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown budget")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "JSON log output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	log, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return Serve(ctx, lis, cfg, log)
}

// Serve runs the HTTP front on lis and shuts it down when ctx ends.
func Serve(ctx context.Context, lis net.Listener, cfg Config, log *zap.Logger) error {
	srv := &http.Server{
		Handler:           httpapi.NewRouter(log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", lis.Addr().String()))
		errc <- srv.Serve(lis)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
