package client

import (
	"context"

	"github.com/thebartekbanach/blitline/pkg/job"
)

type ImageResult struct {
	ImageIdentifier string `json:"image_identifier" bson:"imageIdentifier"`
	S3URL           string `json:"s3_url" bson:"s3URL"`
}

type SubmitResult struct {
	JobID  string        `json:"job_id"`
	Images []ImageResult `json:"images"`
}

type JobResult struct {
	JobID  string        `json:"job_id"`
	Images []ImageResult `json:"images"`
	Error  string        `json:"error,omitempty"`
}

type JobsClient interface {
	Submit(ctx context.Context, j *job.Job) (SubmitResult, error)
	Await(ctx context.Context, jobID string) (JobResult, error)
}
