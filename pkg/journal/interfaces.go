package journal

import (
	"context"
	"time"

	"github.com/thebartekbanach/blitline/pkg/client"
)

// JobRecord remembers a job that was accepted by the service.
type JobRecord struct {
	JobID         string `json:"jobID" bson:"jobID"`
	Signature     string `json:"signature" bson:"signature"`
	ApplicationID string `json:"applicationID" bson:"applicationID"`

	Source       string               `json:"source" bson:"source"`
	Destinations []string             `json:"destinations" bson:"destinations"`
	Images       []client.ImageResult `json:"images" bson:"images"`

	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}

type JobsRepository interface {
	CreateJobRecord(ctx context.Context, record JobRecord) error
	GetJobRecord(ctx context.Context, jobID string) (JobRecord, error)
	GetJobRecordBySignature(ctx context.Context, signature string) (JobRecord, error)
	DeleteJobRecord(ctx context.Context, jobID string) error
}
