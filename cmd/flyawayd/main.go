package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flyawayhq/flyaway/config"
	"github.com/flyawayhq/flyaway/internal/demoapi"
)

func main() {
	log := logrus.New()

	cfgPath := os.Getenv("CONFIG_PATH")
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := demoapi.NewStore()
	if cfg.Server.Seed {
		if err := demoapi.Seed(store, cfg.Server.BcryptCost); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	server := demoapi.NewServer(
		store,
		cfg.Server.JWTSecret,
		time.Duration(cfg.Server.TokenTTLMinutes)*time.Minute,
		cfg.Server.BcryptCost,
		demoapi.WithServerLogger(log),
	)

	log.WithField("addr", cfg.Server.Address).Info("demo API listening")
	if err := demoapi.Run(ctx, cfg.Server.Address, server); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
