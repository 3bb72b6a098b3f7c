package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

type MinioConnection struct {
	config MinioConfig
	client *minio.Client
}

var _ Connection = (*MinioConnection)(nil)

func NewMinioConnection(config MinioConfig) (*MinioConnection, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return nil, err
	}

	return &MinioConnection{config, client}, nil
}

func (c *MinioConnection) StatObject(ctx context.Context, bucket, objectName string) (minio.ObjectInfo, error) {
	return c.client.StatObject(ctx, bucket, objectName, minio.StatObjectOptions{})
}

func (c *MinioConnection) PutObject(ctx context.Context, bucket, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) error {
	_, err := c.client.PutObject(ctx, bucket, objectName, reader, objectSize, opts)
	return err
}

func (c *MinioConnection) RemoveObject(ctx context.Context, bucket, objectName string) error {
	return c.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

// EnsureBucket creates bucket in the configured region unless it exists.
func (c *MinioConnection) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := c.client.BucketExists(ctx, bucket)
	if err != nil || exists {
		return err
	}

	return c.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: c.config.Region})
}
