package submission

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/thebartekbanach/blitline/pkg/client"
	"github.com/thebartekbanach/blitline/pkg/job"
	"github.com/thebartekbanach/blitline/pkg/journal"
)

type submissionService struct {
	client         client.JobsClient
	jobsRepository journal.JobsRepository
	logger         logrus.FieldLogger
	now            func() time.Time
}

var _ SubmissionService = (*submissionService)(nil)

func NewSubmissionService(jobsClient client.JobsClient, jobsRepository journal.JobsRepository, logger logrus.FieldLogger) SubmissionService {
	return &submissionService{jobsClient, jobsRepository, logger, time.Now}
}

func (s *submissionService) Submit(ctx context.Context, j *job.Job) (journal.JobRecord, error) {
	signature, err := j.Signature()
	if err != nil {
		return journal.JobRecord{}, err
	}

	logger := s.logger.WithField("signature", signature)

	existing, err := s.jobsRepository.GetJobRecordBySignature(ctx, signature)
	if err == nil {
		logger.WithField("job_id", existing.JobID).Info("job already submitted, reusing journaled record")
		return existing, nil
	}
	if err != journal.ErrJobRecordNotFound {
		return journal.JobRecord{}, errors.Wrap(err, "cannot look up journaled job")
	}

	result, err := s.client.Submit(ctx, j)
	if err != nil {
		return journal.JobRecord{}, err
	}

	record := journal.JobRecord{
		JobID:         result.JobID,
		Signature:     signature,
		ApplicationID: j.ApplicationID,

		Source:       j.Src.String(),
		Destinations: destinationURLs(j),
		Images:       result.Images,

		SubmittedAt: s.now().UTC(),
	}

	if err := s.jobsRepository.CreateJobRecord(ctx, record); err != nil {
		logger.WithField("job_id", record.JobID).WithError(err).Warn("job submitted but not journaled")
		return record, errors.Wrap(ErrJournalingFailed, err.Error())
	}

	return record, nil
}

func (s *submissionService) Await(ctx context.Context, jobID string) (client.JobResult, error) {
	return s.client.Await(ctx, jobID)
}

func destinationURLs(j *job.Job) []string {
	destinations := j.Destinations()
	urls := make([]string, len(destinations))
	for i, dest := range destinations {
		urls[i] = dest.String()
	}

	return urls
}

var (
	ErrJournalingFailed = errors.New("job journaling failed")
)
