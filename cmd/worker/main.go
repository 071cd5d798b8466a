package main

import (
	"context"
	"log"
	"time"

	"letterqa/internal/activities"
	"letterqa/internal/config"
	"letterqa/internal/storage"
	"letterqa/internal/workflows"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	c, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	db, err := storage.NewDB(ctx, cfg.PostgresURL)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	w := worker.New(c, cfg.TemporalTaskQueue, worker.Options{})
	workflows.Register(w)
	a, err := activities.New(cfg, db)
	if err != nil {
		log.Fatal(err)
	}
	activities.Register(w, a)

	log.Printf("letterqa worker listening on %s queue=%s embed_provider=%q dim=%d",
		cfg.TemporalAddress, cfg.TemporalTaskQueue, cfg.EmbedProvider, cfg.EmbedDim)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatal(err)
	}
}
