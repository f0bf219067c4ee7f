// Package main - Entry point for the token cost estimation server
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

	"go.uber.org/zap"

	"sitegen-cost/api"
	"sitegen-cost/internal/config"
	"sitegen-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Config file (default $SITECOST_CONFIG)")
	addr := flag.String("addr", "", "Server address (overrides config)")
	catalogFile := flag.String("catalog", "", "HCL catalog override file (overrides config)")
	flag.Parse()

	if err := run(*configPath, *addr, *catalogFile); err != nil {
		fmt.Fprintf(os.Stderr, "sitecost-server: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, addr, catalogFile string) error {
	cfg, err := config.Load(config.ResolvePath(configPath))
	if err != nil {
		return err
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	est, err := cfg.Estimator(catalogFile)
	if err != nil {
		return err
	}
	packList, err := cfg.PackList()
	if err != nil {
		return err
	}

	if addr == "" {
		addr = cfg.Server.Addr
	}

	server := api.NewServer(api.Options{
		Version:      version,
		Estimator:    est,
		Packs:        packList,
		Logger:       logging.Logger,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("starting server",
		zap.String("addr", addr),
		zap.String("version", version),
		zap.Int("categories", est.Catalog().Len()),
		zap.String("policy", est.Policy().String()),
	)

	if err := server.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logging.Info("server stopped")
	return nil
}
