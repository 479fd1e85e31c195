// Command transitd serves line-aware tram routing over HTTP.
//
// Configuration comes from the environment, optionally seeded from a .env
// file. SIGHUP reloads the network file; SIGINT and SIGTERM shut down.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/transitgraph/internal/api"
	"github.com/katalvlaran/transitgraph/internal/config"
	"github.com/katalvlaran/transitgraph/internal/loader"
	"github.com/katalvlaran/transitgraph/internal/logger"
	"github.com/katalvlaran/transitgraph/transit"
)

const shutdownTimeout = 15 * time.Second

var (
	envFile = flag.String("env", "", "path to a .env file (default: ./.env if present)")
	check   = flag.Bool("check", false, "load and validate the network file, then exit")
)

func main() {
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	lcfg := logger.DefaultConfig()
	lcfg.Level = logger.ParseLevel(cfg.Logging.Level)
	lcfg.FilePath = cfg.Logging.FilePath
	log := logger.FromConfig(lcfg)

	log.Info("transitd starting",
		"network_file", cfg.Network.File,
		"addr", cfg.HTTP.Addr,
		"log_level", cfg.Logging.Level,
	)

	load := func() (*transit.Network, error) {
		return loader.LoadNetwork(cfg.Network.File, transit.WithLogger(log))
	}

	if *check {
		rep, err := loader.Check(cfg.Network.File, transit.WithLogger(log))
		if err != nil {
			log.Fatal("Network check failed", "error", err)
		}
		for _, c := range rep.Conflicts {
			log.Warn("Travel time differs by direction",
				"from", c.From, "to", c.To, "forward", c.Forward, "backward", c.Backward)
		}
		log.Info("Network check passed",
			"stops", len(rep.Network.AllStops()),
			"lines", len(rep.Network.AllLines()),
			"components", len(rep.Components),
			"connected", rep.Connected,
			"time_conflicts", len(rep.Conflicts),
		)
		return
	}

	svc, err := api.NewService(load, api.Options{
		QueryTimeout:   cfg.HTTP.QueryTimeout,
		ChangeTime:     cfg.Routing.ChangeTime,
		ChangeDistance: cfg.Routing.ChangeDistance,
		CacheSize:      cfg.Routing.CacheSize,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to load network", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewHandler(svc).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for {
		select {
		case err, ok := <-serverErr:
			if ok {
				log.Fatal("HTTP server failed", "error", err)
			}
			return
		case sig := <-sigChan:
			if sig == syscall.SIGHUP {
				log.Info("Reload signal received")
				// a failed reload is logged by the service and the old network stays
				_ = svc.Reload()
				continue
			}
			log.Info("Shutdown signal received", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Graceful shutdown failed", "error", err)
			}
			cancel()
			log.Info("transitd stopped")
			return
		}
	}
}
