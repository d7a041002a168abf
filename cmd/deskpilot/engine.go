package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/okarin/deskpilot"
	"github.com/okarin/deskpilot/internal/config"
	"github.com/okarin/deskpilot/internal/logging"
	"github.com/okarin/deskpilot/pkg/adapters/memory"
	redisstore "github.com/okarin/deskpilot/pkg/adapters/redis"
	"github.com/okarin/deskpilot/pkg/ports"
)

// setup loads configuration, builds the logger and constructs the engine.
// The --simulate flag wins over both the config file and the environment.
func setup(cmd *cobra.Command, reg prometheus.Registerer) (*deskpilot.Engine, config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	if force, _ := cmd.Flags().GetBool("simulate"); force {
		cfg.ForceSimulation = true
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	var history ports.HistoryStore
	if cfg.Redis.Addr != "" {
		history = redisstore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redisstore.WithLimit(int64(cfg.HistoryLimit)))
	} else {
		history = memory.New(memory.WithLimit(cfg.HistoryLimit))
	}

	opts := []deskpilot.Option{
		deskpilot.WithLogger(logger),
		deskpilot.WithForceSimulation(cfg.ForceSimulation),
		deskpilot.WithHistory(history),
		deskpilot.WithApps(cfg.Apps),
		deskpilot.WithOCRLanguages(cfg.OCRLanguages...),
	}
	if reg != nil {
		opts = append(opts, deskpilot.WithMetrics(reg))
	}

	engine, err := deskpilot.New(opts...)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	return engine, cfg, logger, nil
}
