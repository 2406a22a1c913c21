package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"coworking/internal/database"
	"coworking/internal/modules/reconcile"
	"coworking/internal/pkg/logger"
	"coworking/internal/repository"
)

// One-shot sweep over bookings left behind by interrupted commits.
// Operators schedule it (cron or equivalent); RECONCILE_MIN_AGE keeps it
// away from commits that may still be in flight.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	minAge := 30 * time.Minute
	if raw := os.Getenv("RECONCILE_MIN_AGE"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid RECONCILE_MIN_AGE %q: %v", raw, err)
		}
		minAge = parsed
	}

	zlog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := database.Connect(dsn)
	if err != nil {
		zlog.Fatal("db connect failed", zap.Error(err))
	}

	svc := reconcile.NewService(repository.NewBookingRepository(db), zlog)

	n, err := svc.Sweep(context.Background(), minAge)
	if err != nil {
		zlog.Fatal("reconcile sweep failed", zap.Error(err))
	}
	zlog.Info("reconcile sweep completed", zap.Int("cancelled", n), zap.Duration("min_age", minAge))
}
