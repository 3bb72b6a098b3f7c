package storage

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"github.com/thebartekbanach/blitline/pkg/location"
)

type locationStorage struct {
	conn   Connection
	logger logrus.FieldLogger
}

var _ LocationStorage = (*locationStorage)(nil)

func NewLocationStorage(conn Connection, logger logrus.FieldLogger) LocationStorage {
	return &locationStorage{conn, logger}
}

func (s *locationStorage) Exists(ctx context.Context, loc *location.Location) (bool, error) {
	if _, err := s.conn.StatObject(ctx, loc.Bucket(), loc.Key()); err != nil {
		if err := s.convertToKnownError(err); err != ErrObjectNotFound {
			return false, err
		}

		return false, nil
	}

	return true, nil
}

// Upload writes the object with the headers of loc. It refuses to replace an
// existing object.
func (s *locationStorage) Upload(ctx context.Context, loc *location.Location, reader io.Reader, size int64, mimeType string) error {
	exists, err := s.Exists(ctx, loc)
	if err != nil {
		return err
	}
	if exists {
		return ErrObjectAlreadyExists
	}

	s.logger.WithFields(logrus.Fields{
		"bucket": loc.Bucket(),
		"key":    loc.Key(),
		"size":   size,
	}).Debug("uploading object")

	return s.conn.PutObject(ctx, loc.Bucket(), loc.Key(), reader, size, putOptions(loc, mimeType))
}

func (s *locationStorage) Delete(ctx context.Context, loc *location.Location) error {
	exists, err := s.Exists(ctx, loc)
	if err != nil {
		return err
	}
	if !exists {
		return ErrObjectNotFound
	}

	return s.conn.RemoveObject(ctx, loc.Bucket(), loc.Key())
}

func (s *locationStorage) convertToKnownError(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrObjectNotFound
	}

	return err
}

func putOptions(loc *location.Location, mimeType string) minio.PutObjectOptions {
	opts := minio.PutObjectOptions{ContentType: mimeType}

	for name, value := range loc.Headers() {
		switch http.CanonicalHeaderKey(name) {
		case "Cache-Control":
			opts.CacheControl = value
		case "Content-Disposition":
			opts.ContentDisposition = value
		case "Content-Encoding":
			opts.ContentEncoding = value
		case "Content-Language":
			opts.ContentLanguage = value
		case "Content-Type":
			opts.ContentType = value
		default:
			if opts.UserMetadata == nil {
				opts.UserMetadata = make(map[string]string)
			}
			opts.UserMetadata[name] = value
		}
	}

	return opts
}

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
)
