package api

import (
	"context"

	"letterqa/internal/workflows"

	enumspb "go.temporal.io/api/enums/v1"
	tclient "go.temporal.io/sdk/client"
)

// TemporalStarter launches ingestion runs on the worker's task queue. The
// workflow id is stable so only one ingestion runs at a time: starting while
// a run is in flight errors, starting after one finished is allowed.
type TemporalStarter struct {
	client    tclient.Client
	taskQueue string
	dataDir   string
}

func NewTemporalStarter(c tclient.Client, taskQueue, dataDir string) *TemporalStarter {
	return &TemporalStarter{client: c, taskQueue: taskQueue, dataDir: dataDir}
}

func (t *TemporalStarter) StartIngest(ctx context.Context) (string, string, error) {
	we, err := t.client.ExecuteWorkflow(ctx, tclient.StartWorkflowOptions{
		ID:                                       "ingest-letters",
		TaskQueue:                                t.taskQueue,
		WorkflowIDReusePolicy:                    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}, workflows.IngestWorkflow, workflows.IngestInput{InputDir: t.dataDir})
	if err != nil {
		return "", "", err
	}
	return we.GetID(), we.GetRunID(), nil
}
