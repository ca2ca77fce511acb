// Package main runs the provenance reporter: it follows a UTXO ledger and projects every block
// into a provenance graph.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/status"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/service/reporter"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Coin           model.Coin    `long:"coin" env:"PROVENANCE_REPORTER_COIN" description:"coin name" default:"BTC"`
	Network        model.Network `long:"network" env:"PROVENANCE_REPORTER_NETWORK" description:"network name" required:"true"`
	RPCURL         string        `long:"rpc-url" env:"PROVENANCE_REPORTER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser        string        `long:"rpc-user" env:"PROVENANCE_REPORTER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"PROVENANCE_REPORTER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRPS         int           `long:"rpc-rps" env:"PROVENANCE_REPORTER_RPC_RPS" description:"max RPC calls per second, 0 disables limiting" default:"0"`
	Sink           string        `long:"sink" env:"PROVENANCE_REPORTER_SINK" description:"graph sink" choice:"clickhouse" choice:"postgres" choice:"memory" default:"clickhouse"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"PROVENANCE_REPORTER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	PostgresDSN    string        `long:"postgres-dsn" env:"PROVENANCE_REPORTER_POSTGRES_DSN" description:"PostgreSQL DSN"`
	Checkpoint     string        `long:"checkpoint" env:"PROVENANCE_REPORTER_CHECKPOINT" description:"checkpoint store" choice:"file" choice:"postgres" default:"file"`
	CheckpointFile string        `long:"checkpoint-file" env:"PROVENANCE_REPORTER_CHECKPOINT_FILE" description:"checkpoint file path" default:"/tmp/bitcoin.reporter.progress"`
	Args           string        `long:"args" env:"PROVENANCE_REPORTER_ARGS" description:"run bounds, e.g. \"start=0 end=1000\""`
	Backoff        time.Duration `long:"backoff" env:"PROVENANCE_REPORTER_BACKOFF" description:"wait before retrying an unavailable block" default:"10s"`
	RateWindow     time.Duration `long:"rate-window" env:"PROVENANCE_REPORTER_RATE_WINDOW" description:"ingestion rate report window" default:"60s"`
	MetricsAddr    string        `long:"metrics-addr" env:"PROVENANCE_REPORTER_METRICS_ADDR" description:"address for a dedicated metrics server, metrics are always served on --http-addr"`
	GRPCAddr       string        `long:"grpc-addr" env:"PROVENANCE_REPORTER_GRPC_ADDR" description:"gRPC health address" default:":8000"`
	HTTPAddr       string        `long:"http-addr" env:"PROVENANCE_REPORTER_HTTP_ADDR" description:"REST health and metrics address" default:":8001"`
	ZMQAddr        string        `long:"zmq-addr" env:"PROVENANCE_REPORTER_ZMQ_ADDR" description:"zmq hashblock endpoint, requires the zmq build tag"`
	EnvFile        string        `long:"env-file" env:"PROVENANCE_REPORTER_ENV_FILE" description:"dotenv file loaded before the environment is read" default:".env"`
	LogJSON        bool          `long:"log-json" env:"PROVENANCE_REPORTER_LOG_JSON" description:"production JSON logging"`
}

func main() {
	cfg, err := parseConfig(os.Args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) {
			if ferr.Type == flags.ErrHelp {
				return
			}
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("provenance reporter failed", zap.Error(err))
	}
}

// parseConfig loads the dotenv file named by --env-file, then parses all flags so env tags see it.
func parseConfig(args []string) (config, error) {
	var pre struct {
		EnvFile string `long:"env-file" env:"PROVENANCE_REPORTER_ENV_FILE" default:".env"`
	}
	if _, err := flags.NewParser(&pre, flags.IgnoreUnknown).ParseArgs(args); err != nil {
		return config{}, err
	}
	if pre.EnvFile != "" {
		if err := godotenv.Load(pre.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("load env file %s: %w", pre.EnvFile, err)
		}
	}

	var cfg config
	_, err := flags.ParseArgs(&cfg, args)
	return cfg, err
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
	)
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init utxo rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return err
	}
	var limiter ratelimit.Limiter
	if cfg.RPCRPS > 0 {
		limiter = ratelimit.New(cfg.RPCRPS)
	}
	source := bitcoin.NewBlockSource(
		bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network)),
		decoder,
		limiter,
		cfg.Network,
	)

	stores, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger.Named("blockSignal"))
	if err != nil {
		return err
	}

	rep, err := reporter.NewReporter(
		source,
		stores.sink,
		stores.checkpoint,
		metrics.NewReporter(cfg.Coin, cfg.Network),
		cfg.Coin,
		cfg.Network,
		logger.Named("reporter"),
		reporter.Config{
			Backoff:     cfg.Backoff,
			RateWindow:  cfg.RateWindow,
			BlockSignal: blockSignal,
		},
	)
	if err != nil {
		return err
	}

	statusServer := status.NewServer(logger.Named("status"))
	statusCtx, stopStatus := context.WithCancel(ctx)
	defer stopStatus()

	g, gctx := errgroup.WithContext(statusCtx)
	handle := reporter.NewController(rep, logger.Named("controller")).Start(ctx, cfg.Args)
	statusServer.SetServing(true)

	g.Go(func() error {
		return statusServer.Run(gctx, cfg.GRPCAddr, cfg.HTTPAddr)
	})
	g.Go(func() error {
		defer stopStatus()
		select {
		case <-handle.Done():
		case <-gctx.Done():
			handle.Stop()
			<-handle.Done()
		}
		statusServer.SetServing(false)
		return handle.Err()
	})
	return g.Wait()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
