package submission

import (
	"context"

	"github.com/thebartekbanach/blitline/pkg/client"
	"github.com/thebartekbanach/blitline/pkg/job"
	"github.com/thebartekbanach/blitline/pkg/journal"
)

type SubmissionService interface {
	// Submit sends j to the service unless a job with the same signature
	// was already journaled, in which case the existing record is returned.
	Submit(ctx context.Context, j *job.Job) (journal.JobRecord, error)
	Await(ctx context.Context, jobID string) (client.JobResult, error)
}
