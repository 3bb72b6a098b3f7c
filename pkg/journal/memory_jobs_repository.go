package journal

import (
	"context"
	"sync"
)

type memoryJobsRepository struct {
	records map[string]JobRecord
	lock    sync.Mutex
}

var _ JobsRepository = (*memoryJobsRepository)(nil)

// NewMemoryJobsRepository keeps records for the lifetime of the process only.
func NewMemoryJobsRepository() JobsRepository {
	return &memoryJobsRepository{records: make(map[string]JobRecord)}
}

func (repo *memoryJobsRepository) CreateJobRecord(ctx context.Context, record JobRecord) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if record.JobID == "" {
		return ErrJobIDNotAllowed
	}

	if _, exists := repo.records[record.JobID]; exists {
		return ErrJobRecordAlreadyExists
	}

	repo.records[record.JobID] = record
	return nil
}

func (repo *memoryJobsRepository) GetJobRecord(ctx context.Context, jobID string) (JobRecord, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	record, exists := repo.records[jobID]
	if !exists {
		return JobRecord{}, ErrJobRecordNotFound
	}

	return record, nil
}

func (repo *memoryJobsRepository) GetJobRecordBySignature(ctx context.Context, signature string) (JobRecord, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	var latest *JobRecord
	for _, record := range repo.records {
		if record.Signature != signature {
			continue
		}

		if latest == nil || record.SubmittedAt.After(latest.SubmittedAt) {
			found := record
			latest = &found
		}
	}

	if latest == nil {
		return JobRecord{}, ErrJobRecordNotFound
	}

	return *latest, nil
}

func (repo *memoryJobsRepository) DeleteJobRecord(ctx context.Context, jobID string) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if _, exists := repo.records[jobID]; !exists {
		return ErrJobRecordNotFound
	}

	delete(repo.records, jobID)
	return nil
}
