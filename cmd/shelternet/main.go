// Command shelternet loads a city configuration, registers its shelters and
// seed requests, places everyone it can and optionally serves Prometheus
// metrics until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/shelternet/config"
	"github.com/katalvlaran/shelternet/engine"
)

const defaultConfigPath = "shelternet.yaml"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "shelternet: .env:", err)
		os.Exit(1)
	}

	path := defaultConfigPath
	if v, ok := os.LookupEnv(config.EnvConfigPath); ok && v != "" {
		path = v
	}
	flag.StringVar(&path, "config", path, "path to the YAML configuration")
	hops := flag.Int("hops", 2, "hop radius reported around each station")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, path, *hops); err != nil {
		fmt.Fprintln(os.Stderr, "shelternet:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, hops int) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	g, err := cfg.BuildTopology()
	if err != nil {
		return err
	}
	opts := append(cfg.EngineOptions(), engine.WithLogger(logger), engine.WithRegisterer(reg))
	e, err := engine.New(g, opts...)
	if err != nil {
		return err
	}

	if err = seed(ctx, e, cfg); err != nil {
		return err
	}
	report(ctx, logger, e, hops)
	if err = place(ctx, logger, e); err != nil {
		return err
	}

	s := e.Summary()
	logger.Info("allocation finished",
		zap.Int("requests", s.Requests),
		zap.Int("allocated", s.Allocated),
		zap.Int("unallocated", s.Unallocated),
		zap.Int("free_beds", s.FreeBeds),
		zap.Int("shelters_full", s.SheltersFull),
	)

	if cfg.Metrics.Addr == "" {
		return nil
	}

	return serveMetrics(ctx, logger, cfg.Metrics.Addr, reg)
}

func seed(ctx context.Context, e *engine.Engine, cfg *config.Config) error {
	for _, s := range cfg.BuildShelters() {
		if err := e.RegisterShelter(ctx, s); err != nil {
			return err
		}
	}
	for _, in := range cfg.BuildRequests() {
		if _, err := e.AddRequest(ctx, in); err != nil {
			return err
		}
	}

	return nil
}

// report logs the areas around every station and the shelter connectivity.
func report(ctx context.Context, logger *zap.Logger, e *engine.Engine, hops int) {
	for _, st := range e.Stations() {
		areas, err := e.NearbyAreas(ctx, st.Node, hops)
		if err != nil {
			logger.Warn("nearby areas failed", zap.String("station", st.Name), zap.Error(err))
			continue
		}
		nodes := make([]int, len(areas))
		for i, a := range areas {
			nodes[i] = int(a.Node)
		}
		logger.Info("nearby areas", zap.String("station", st.Name), zap.Int("hops", hops), zap.Ints("nodes", nodes))
	}

	c, err := e.Connectivity(ctx)
	if err != nil {
		logger.Warn("connectivity check failed", zap.Error(err))
		return
	}
	logger.Info("shelter connectivity",
		zap.Bool("connected", c.Connected()),
		zap.Int("origin_shelter", c.Origin),
		zap.Ints("unreachable_shelters", c.Unreachable),
	)
}

// place drains the emergency queue, then allocates everyone else by score.
func place(ctx context.Context, logger *zap.Logger, e *engine.Engine) error {
	rep, err := e.DrainEmergencyQueue(ctx)
	if err != nil {
		return err
	}
	logger.Info("emergency queue drained",
		zap.Int("allocated", len(rep.Allocations)),
		zap.Int("skipped", len(rep.Skipped)),
		zap.Int("failed", len(rep.Failed)),
	)

	for _, r := range e.HighPriority(-1) {
		if r.Allocated {
			continue
		}
		_, err = e.Allocate(ctx, r.ID)
		switch {
		case err == nil, errors.Is(err, engine.ErrNoAvailableShelter):
		default:
			return err
		}
	}

	return nil
}

func serveMetrics(ctx context.Context, logger *zap.Logger, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("serving metrics", zap.String("addr", addr))

	select {
	case err := <-errc:
		return fmt.Errorf("metrics listener: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	logger.Info("metrics listener stopped")

	return nil
}
