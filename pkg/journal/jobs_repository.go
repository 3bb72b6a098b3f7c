package journal

import (
	"context"
	"errors"

	dbconnections "github.com/thebartekbanach/blitline/pkg/journal/connections"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const jobsCollection = "jobs"

type jobsRepository struct {
	conn dbconnections.JournalDBConnection
}

var _ JobsRepository = (*jobsRepository)(nil)

func NewJobsRepository(conn dbconnections.JournalDBConnection) JobsRepository {
	return &jobsRepository{conn}
}

func (repo *jobsRepository) CreateJobRecord(ctx context.Context, record JobRecord) error {
	if record.JobID == "" {
		return ErrJobIDNotAllowed
	}

	collection := repo.conn.Collection(jobsCollection)

	result := collection.FindOne(ctx, bson.M{"jobID": record.JobID})
	if result.Err() != mongo.ErrNoDocuments {
		if result.Err() != nil {
			return result.Err()
		}

		return ErrJobRecordAlreadyExists
	}

	_, err := collection.InsertOne(ctx, record)
	return err
}

func (repo *jobsRepository) GetJobRecord(ctx context.Context, jobID string) (JobRecord, error) {
	return repo.findOne(ctx, bson.M{"jobID": jobID}, options.FindOne())
}

// GetJobRecordBySignature returns the most recently submitted job with signature.
func (repo *jobsRepository) GetJobRecordBySignature(ctx context.Context, signature string) (JobRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	return repo.findOne(ctx, bson.M{"signature": signature}, opts)
}

func (repo *jobsRepository) DeleteJobRecord(ctx context.Context, jobID string) error {
	collection := repo.conn.Collection(jobsCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"jobID": jobID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrJobRecordNotFound
	}

	return nil
}

func (repo *jobsRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (JobRecord, error) {
	collection := repo.conn.Collection(jobsCollection)

	var record JobRecord
	if err := collection.FindOne(ctx, filter, opts).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return JobRecord{}, ErrJobRecordNotFound
		}

		return JobRecord{}, err
	}

	return record, nil
}

var (
	ErrJobIDNotAllowed        = errors.New("this job id is not allowed")
	ErrJobRecordNotFound      = errors.New("job record not found")
	ErrJobRecordAlreadyExists = errors.New("job record already exists")
)
