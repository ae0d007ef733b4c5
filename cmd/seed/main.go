package main

import (
	"context"
	"log"
	"os"
	"time"

	"jewelstore/internal/config"
	"jewelstore/internal/db"
	"jewelstore/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	start := time.Now()
	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}
	logger.Printf("seed applied in %s", time.Since(start).Truncate(time.Millisecond))
}
