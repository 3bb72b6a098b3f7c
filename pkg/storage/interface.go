package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/thebartekbanach/blitline/pkg/location"
)

type Connection interface {
	StatObject(ctx context.Context, bucket, objectName string) (minio.ObjectInfo, error)
	PutObject(ctx context.Context, bucket, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) error
	RemoveObject(ctx context.Context, bucket, objectName string) error
}

// LocationStorage reads and writes the objects locations point at, typically
// to upload a source image before a job is submitted.
type LocationStorage interface {
	Exists(ctx context.Context, loc *location.Location) (bool, error)
	Upload(ctx context.Context, loc *location.Location, reader io.Reader, size int64, mimeType string) error
	Delete(ctx context.Context, loc *location.Location) error
}
