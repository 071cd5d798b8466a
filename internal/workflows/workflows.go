package workflows

import (
	"fmt"
	"path/filepath"
	"time"

	"letterqa/internal/activities"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const QueryGetProgress = "GetIngestProgress"

// IngestWorkflow drives one ingestion run: ensure the schema, list the
// ingestable PDFs, then process each document sequentially through a child
// workflow. A failed document aborts the run; per-chunk trouble inside a
// document is tolerated and only reflected in the summary counts. Re-running
// the workflow re-inserts documents with fresh ids; it does not deduplicate
// against prior runs.
func IngestWorkflow(ctx workflow.Context, input IngestInput) (IngestSummary, error) {
	progress := IngestProgress{PerDocument: map[string]string{}}
	if err := workflow.SetQueryHandler(ctx, QueryGetProgress, func() (IngestProgress, error) {
		return progress, nil
	}); err != nil {
		return IngestSummary{}, err
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	if err := workflow.ExecuteActivity(ctx, "EnsureSchemaActivity").Get(ctx, nil); err != nil {
		return IngestSummary{}, fmt.Errorf("ensure schema: %w", err)
	}

	var listOut activities.ListPDFsOutput
	if err := workflow.ExecuteActivity(ctx, "ListPDFsActivity", activities.ListPDFsInput{InputDir: input.InputDir}).Get(ctx, &listOut); err != nil {
		return IngestSummary{}, err
	}
	progress.Total = len(listOut.Files)

	for _, file := range listOut.Files {
		name := filepath.Base(file.Path)
		progress.PerDocument[name] = "processing"
		cwo := workflow.ChildWorkflowOptions{WorkflowID: workflow.GetInfo(ctx).WorkflowExecution.ID + "-" + name}
		childCtx := workflow.WithChildOptions(ctx, cwo)

		var out DocumentIngestOutput
		if err := workflow.ExecuteChildWorkflow(childCtx, DocumentIngestWorkflow, DocumentIngestInput{
			File:         file,
			ChunkSize:    input.ChunkSize,
			ChunkOverlap: input.ChunkOverlap,
		}).Get(ctx, &out); err != nil {
			progress.PerDocument[name] = "failed"
			return progress.Summary, fmt.Errorf("ingest %s: %w", name, err)
		}
		progress.Done++
		progress.PerDocument[name] = "done"
		progress.Summary.Documents++
		progress.Summary.ChunksStored += out.Chunks.Stored
		progress.Summary.ChunksSkipped += out.Chunks.Skipped
		progress.Summary.ChunksFailed += out.Chunks.Failed
	}
	return progress.Summary, nil
}

// DocumentIngestWorkflow processes one document: extract text, insert the
// document row, chunk, then embed and store the chunks in original order.
func DocumentIngestWorkflow(ctx workflow.Context, input DocumentIngestInput) (DocumentIngestOutput, error) {
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    2,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var textOut activities.ExtractTextOutput
	if err := workflow.ExecuteActivity(ctx, "ExtractTextActivity", activities.ExtractTextInput{Path: input.File.Path}).Get(ctx, &textOut); err != nil {
		return DocumentIngestOutput{}, err
	}

	var docOut activities.InsertDocumentOutput
	if err := workflow.ExecuteActivity(ctx, "InsertDocumentActivity", activities.InsertDocumentInput{
		Source:    filepath.Base(input.File.Path),
		Year:      input.File.Year,
		PageCount: textOut.PageCount,
		FileSize:  textOut.FileSize,
	}).Get(ctx, &docOut); err != nil {
		return DocumentIngestOutput{}, err
	}

	var chunkOut activities.ChunkTextOutput
	if err := workflow.ExecuteActivity(ctx, "ChunkTextActivity", activities.ChunkTextInput{
		Text:         textOut.Text,
		ChunkSize:    input.ChunkSize,
		ChunkOverlap: input.ChunkOverlap,
	}).Get(ctx, &chunkOut); err != nil {
		return DocumentIngestOutput{}, err
	}

	var storeOut activities.StoreChunksOutput
	if err := workflow.ExecuteActivity(ctx, "StoreChunksActivity", activities.StoreChunksInput{
		DocumentID: docOut.DocumentID,
		Chunks:     chunkOut.Chunks,
	}).Get(ctx, &storeOut); err != nil {
		return DocumentIngestOutput{}, err
	}

	return DocumentIngestOutput{DocumentID: docOut.DocumentID, Chunks: storeOut.Result}, nil
}
