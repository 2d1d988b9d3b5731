// Package evcalc parses evcalc flags and evaluates a matchup file or runs a
// sweep over random matchups.
package evcalc

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"duel_ev/internal/combat"
	"duel_ev/internal/config"
	"duel_ev/internal/logging"
	"duel_ev/internal/sweep"

	"go.uber.org/zap"
)

// Config holds evcalc configuration.
type Config struct {
	Matchup  string `env:"EVCALC_MATCHUP" envDefault:"matchup.yaml"`
	Out      string `env:"EVCALC_OUT"`
	Runs     int    `env:"EVCALC_RUNS" envDefault:"0"`
	Seed     int64  `env:"EVCALC_SEED" envDefault:"12345"`
	Workers  int    `env:"EVCALC_WORKERS" envDefault:"8"`
	LogLevel string `env:"EVCALC_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"EVCALC_LOG_JSON" envDefault:"false"`
}

// ParseConfig parses environment and flags into a Config. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Matchup, "matchup", cfg.Matchup, "matchup YAML file")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "write the JSON report here instead of printing text")
	fs.IntVar(&cfg.Runs, "n", cfg.Runs, "sweep this many random matchups instead of reading -matchup")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "sweep seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "sweep workers")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "JSON log output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes one evcalc invocation. Text output goes to stdout.
func Run(ctx context.Context, cfg Config, stdout io.Writer) error {
	log, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Runs > 0 {
		return runSweep(ctx, cfg, log, stdout)
	}
	return runSingle(cfg, log, stdout)
}

func runSingle(cfg Config, log *zap.Logger, stdout io.Writer) error {
	m, err := config.LoadMatchup(cfg.Matchup)
	if err != nil {
		return err
	}
	me, enemy, err := m.Build()
	if err != nil {
		return fmt.Errorf("matchup %s: %w", cfg.Matchup, err)
	}
	res := combat.Evaluate(me, enemy)
	log.Info("evaluated matchup",
		zap.String("matchup", cfg.Matchup),
		zap.Stringer("best", res.Best),
		zap.Float64("ev", res.BestEV),
	)

	if cfg.Out != "" {
		return writeOut(cfg.Out, combat.MarshalPretty(combat.NewReport(me, enemy, res)), log)
	}
	return RenderText(stdout, me, enemy, res)
}

func runSweep(ctx context.Context, cfg Config, log *zap.Logger, stdout io.Writer) error {
	start := time.Now()
	sum, err := sweep.Run(ctx, sweep.Options{
		Runs:    cfg.Runs,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
		Limits:  sweep.DefaultLimits,
	})
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	log.Info("sweep finished",
		zap.Int("runs", sum.Runs),
		zap.Int("workers", cfg.Workers),
		zap.Int64("seed", cfg.Seed),
		zap.Duration("elapsed", time.Since(start)),
	)
	if cfg.Out != "" {
		return writeOut(cfg.Out, combat.MarshalPretty(sum), log)
	}
	return RenderSweep(stdout, sum)
}

func writeOut(path string, b []byte, log *zap.Logger) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("report written", zap.String("out", path))
	return nil
}
