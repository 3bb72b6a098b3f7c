package storage

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// TestingBucket is a randomly named bucket created for a single test and
// removed together with its objects when the test ends.
type TestingBucket struct {
	*MinioConnection
	Name string
}

func NewTestingBucket(t *testing.T) *TestingBucket {
	conn, err := NewMinioConnection(testingMinioConfig())
	if err != nil {
		t.Fatalf("Error when connecting to minio: %s", err)
	}

	bucket := &TestingBucket{conn, uuid.New().String() + "-testing-bucket"}
	if err := conn.EnsureBucket(context.Background(), bucket.Name); err != nil {
		t.Fatalf("Error when creating testing bucket: %s", err)
	}

	t.Cleanup(func() { bucket.drop(t) })
	return bucket
}

func (b *TestingBucket) drop(t *testing.T) {
	ctx := context.Background()
	for object := range b.client.ListObjects(ctx, b.Name, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			t.Errorf("Error when listing testing bucket: %s", object.Err)
			return
		}

		b.client.RemoveObject(ctx, b.Name, object.Key, minio.RemoveObjectOptions{})
	}

	if err := b.client.RemoveBucket(ctx, b.Name); err != nil {
		t.Errorf("Error when dropping testing bucket: %s", err)
	}
}

func testingMinioConfig() MinioConfig {
	config := MinioConfig{
		Endpoint:  os.Getenv("BLITLINE_TEST_MINIO_ENDPOINT"),
		AccessKey: "minio",
		SecretKey: "minio123",
		Region:    "us-east-1",
	}

	if config.Endpoint == "" {
		config.Endpoint = "IntegrationTests.Blitline.Minio:9000"
	}

	return config
}
