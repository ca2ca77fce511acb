package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/checkpoint"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/repository/memory"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/repository/postgres"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/service/reporter"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// stores holds the graph sink and checkpoint store selected by flags.
type stores struct {
	sink       reporter.GraphSink
	checkpoint reporter.CheckpointStore
	closers    []func()
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg config, logger *zap.Logger) (_ *stores, err error) {
	s := &stores{}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	var pool *pgxpool.Pool
	postgresPool := func() (*pgxpool.Pool, error) {
		if pool != nil {
			return pool, nil
		}
		if cfg.PostgresDSN == "" {
			return nil, errors.New("PostgreSQL DSN is required")
		}
		p, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		pool = p
		s.closers = append(s.closers, p.Close)
		return p, nil
	}

	switch cfg.Sink {
	case "clickhouse":
		if cfg.ClickhouseDSN == "" {
			return nil, errors.New("ClickHouse DSN is required")
		}
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Coin, cfg.Network, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init repository: %w", err)
		}
		s.closers = append(s.closers, func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse repository", zap.Error(err))
			}
		})
		s.sink = repo
	case "postgres":
		p, err := postgresPool()
		if err != nil {
			return nil, err
		}
		s.sink = postgres.NewRepository(p, cfg.Coin, cfg.Network, metrics.NewPostgresRepository())
	case "memory":
		logger.Warn("memory sink selected, the graph is discarded on exit")
		s.sink = memory.NewGraph()
	default:
		return nil, fmt.Errorf("unknown sink %q", cfg.Sink)
	}

	switch cfg.Checkpoint {
	case "file":
		f := checkpoint.NewFile(cfg.CheckpointFile)
		logger.Info("file checkpoint", zap.String("path", f.Path()))
		s.checkpoint = f
	case "postgres":
		p, err := postgresPool()
		if err != nil {
			return nil, err
		}
		s.checkpoint = postgres.NewCheckpoint(p, cfg.Coin, cfg.Network, metrics.NewPostgresRepository())
	default:
		return nil, fmt.Errorf("unknown checkpoint store %q", cfg.Checkpoint)
	}
	logger.Info("stores ready", zap.String("sink", cfg.Sink), zap.String("checkpoint", cfg.Checkpoint))
	return s, nil
}
