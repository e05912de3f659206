package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"gatepass/internal/config"
	"gatepass/internal/db"
	"gatepass/internal/repository"
)

func main() {
	file := pflag.StringP("file", "f", "seed.yaml", "path to the YAML fixture")
	force := pflag.Bool("force", false, "seed even if users already exist")
	pflag.Parse()

	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	fixture, err := LoadFixture(*file)
	if err != nil {
		logger.Error("load fixture", "file", *file, "error", err)
		os.Exit(1)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := Seed(ctx, Stores{
		Users:    repository.NewUserRepository(gormDB),
		Vehicles: repository.NewVehicleRepository(gormDB),
		Passes:   repository.NewPassRepository(gormDB),
	}, fixture, time.Now(), *force)
	if err != nil {
		logger.Error("seed", "error", err)
		os.Exit(1)
	}
	if res.Skipped {
		logger.Info("users already exist, nothing seeded (use --force)")
		return
	}
	logger.Info("database seeded", "users", res.Users, "vehicles", res.Vehicles, "passes", res.Passes)
}
