package activities

import (
	"context"

	"letterqa/internal/config"
	"letterqa/internal/ingest"
	"letterqa/internal/providers"
	"letterqa/internal/storage"
	"letterqa/internal/util"
)

// Activities holds the store handles and embedder shared by the ingestion
// workflow steps. The DB is acquired once by the worker process and released
// when it shuts down.
type Activities struct {
	cfg       config.Config
	db        *storage.DB
	docRepo   *storage.DocumentRepo
	chunkRepo *storage.ChunkRepo
	embedder  providers.Embedder
}

func New(cfg config.Config, db *storage.DB) (*Activities, error) {
	embedder, err := providers.NewEmbedder(cfg)
	if err != nil {
		return nil, err
	}
	return &Activities{
		cfg:       cfg,
		db:        db,
		docRepo:   storage.NewDocumentRepo(db),
		chunkRepo: storage.NewChunkRepo(db, cfg.EmbedDim, cfg.MinChunkChars),
		embedder:  embedder,
	}, nil
}

// EnsureSchemaActivity runs on every ingestion start; a schema failure is
// fatal for the run.
func (a *Activities) EnsureSchemaActivity(ctx context.Context) error {
	return storage.EnsureSchema(ctx, a.db, a.cfg.EmbedDim)
}

func (a *Activities) ListPDFsActivity(ctx context.Context, in ListPDFsInput) (ListPDFsOutput, error) {
	_ = ctx
	files, err := ingest.ListPDFs(in.InputDir)
	if err != nil {
		return ListPDFsOutput{}, err
	}
	return ListPDFsOutput{Files: files}, nil
}

func (a *Activities) ExtractTextActivity(ctx context.Context, in ExtractTextInput) (ExtractTextOutput, error) {
	_ = ctx
	doc, err := ingest.ExtractText(in.Path)
	if err != nil {
		return ExtractTextOutput{}, err
	}
	return ExtractTextOutput{Text: doc.Text, PageCount: doc.PageCount, FileSize: doc.FileSize}, nil
}

func (a *Activities) InsertDocumentActivity(ctx context.Context, in InsertDocumentInput) (InsertDocumentOutput, error) {
	id, err := a.docRepo.InsertDocument(ctx, in.Source, in.Year, in.PageCount, in.FileSize)
	if err != nil {
		return InsertDocumentOutput{}, err
	}
	return InsertDocumentOutput{DocumentID: id}, nil
}

func (a *Activities) ChunkTextActivity(ctx context.Context, in ChunkTextInput) (ChunkTextOutput, error) {
	_ = ctx
	size := in.ChunkSize
	if size <= 0 {
		size = a.cfg.ChunkSize
	}
	overlap := in.ChunkOverlap
	if overlap <= 0 {
		overlap = a.cfg.ChunkOverlap
	}
	chunks, err := util.ChunkText(in.Text, size, overlap)
	if err != nil {
		return ChunkTextOutput{}, err
	}
	return ChunkTextOutput{Chunks: chunks}, nil
}

// StoreChunksActivity embeds and persists one document's chunks. Per-chunk
// failures are tolerated inside; only a wholesale inability to proceed
// surfaces as an activity error.
func (a *Activities) StoreChunksActivity(ctx context.Context, in StoreChunksInput) (StoreChunksOutput, error) {
	res := ingest.StoreChunks(ctx, in.DocumentID, in.Chunks, a.cfg.MinChunkChars, a.embedder, a.chunkRepo)
	return StoreChunksOutput{Result: res}, nil
}
