package activities

import "go.temporal.io/sdk/worker"

func Register(w worker.Worker, a *Activities) {
	w.RegisterActivity(a.EnsureSchemaActivity)
	w.RegisterActivity(a.ListPDFsActivity)
	w.RegisterActivity(a.ExtractTextActivity)
	w.RegisterActivity(a.InsertDocumentActivity)
	w.RegisterActivity(a.ChunkTextActivity)
	w.RegisterActivity(a.StoreChunksActivity)
}
