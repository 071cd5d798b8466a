package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"letterqa/internal/api"
	"letterqa/internal/config"
	"letterqa/internal/providers"
	"letterqa/internal/rag"
	"letterqa/internal/storage"
	"letterqa/internal/vector"

	"github.com/joho/godotenv"
	tclient "go.temporal.io/sdk/client"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	db, err := storage.NewDB(ctx, cfg.PostgresURL)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = storage.EnsureSchema(ctx, db, cfg.EmbedDim)
	cancel()
	if err != nil {
		log.Fatal(err)
	}

	embedder, err := providers.NewEmbedder(cfg)
	if err != nil {
		log.Fatal(err)
	}
	generator, err := providers.NewGenerator(cfg)
	if err != nil {
		log.Fatal(err)
	}

	retriever := rag.NewRetriever(embedder, vector.NewSearcher(db.Pool))
	answers := rag.NewService(retriever, generator)

	docRepo := storage.NewDocumentRepo(db)
	chunkRepo := storage.NewChunkRepo(db, cfg.EmbedDim, cfg.MinChunkChars)
	status := storage.NewStatus(db, docRepo, chunkRepo)

	tc, err := tclient.Dial(tclient.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		log.Fatal(err)
	}
	defer tc.Close()
	starter := api.NewTemporalStarter(tc, cfg.TemporalTaskQueue, cfg.DataDir)

	h := api.NewServer(cfg, status, retriever, answers, starter)
	log.Printf("letterqa api listening on %s embed_provider=%q llm_provider=%q dim=%d",
		cfg.APIAddr, cfg.EmbedProvider, cfg.LLMProvider, cfg.EmbedDim)
	if err := http.ListenAndServe(cfg.APIAddr, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
