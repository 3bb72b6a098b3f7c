package main

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/thebartekbanach/blitline/pkg/client"
	"github.com/thebartekbanach/blitline/pkg/journal"
	dbconnections "github.com/thebartekbanach/blitline/pkg/journal/connections"
	"github.com/thebartekbanach/blitline/pkg/storage"
)

func init() {
	viper.SetEnvPrefix("BLITLINE")
	viper.AutomaticEnv()

	viper.SetDefault("service_url", "https://api.blitline.com")
	viper.SetDefault("poll_url", "https://cache.blitline.com")
	viper.SetDefault("timeout", time.Minute)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("minio_region", "us-east-1")
}

func InitializeLogger() logrus.FieldLogger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		logger.WithError(err).Warn("unknown BLITLINE_LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)
	return logger
}

func InitializeApplicationID() (string, error) {
	applicationID := viper.GetString("application_id")
	if applicationID == "" {
		return "", errors.New("BLITLINE_APPLICATION_ID is required environment variable")
	}

	return applicationID, nil
}

func InitializeClientConfig() (client.Config, error) {
	config := client.Config{
		ServiceURL:     viper.GetString("service_url"),
		PollURL:        viper.GetString("poll_url"),
		AllowedBuckets: splitList(viper.GetString("allowed_buckets")),
		Timeout:        viper.GetDuration("timeout"),
	}

	if config.ServiceURL == "" {
		return client.Config{}, errors.New("BLITLINE_SERVICE_URL cannot be empty")
	}

	if config.Timeout <= 0 {
		return client.Config{}, errors.New("BLITLINE_TIMEOUT must be a positive duration")
	}

	return config, nil
}

// InitializeJobsRepository journals jobs in MongoDB when a connection string
// is configured and in memory otherwise.
func InitializeJobsRepository(ctx context.Context, logger logrus.FieldLogger) (journal.JobsRepository, func(), error) {
	config := dbconnections.JournalDBConfig{
		ConnectionString: viper.GetString("mongo_connection_string"),
		DatabaseName:     viper.GetString("mongo_database"),
	}

	if config.ConnectionString == "" {
		logger.Debug("BLITLINE_MONGO_CONNECTION_STRING not set, journaling jobs in memory")
		return journal.NewMemoryJobsRepository(), func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	conn, err := dbconnections.NewJournalDBProductionConnection(connectCtx, config)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot connect to journal database")
	}

	cleanup := func() {
		if err := conn.Close(context.Background()); err != nil {
			logger.WithError(err).Warn("cannot close journal database connection")
		}
	}

	return journal.NewJobsRepository(conn), cleanup, nil
}

func InitializeMinioConfig() (storage.MinioConfig, error) {
	config := storage.MinioConfig{
		Endpoint:  viper.GetString("minio_endpoint"),
		AccessKey: viper.GetString("minio_access_key"),
		SecretKey: viper.GetString("minio_secret_key"),
		Region:    viper.GetString("minio_region"),
		UseSSL:    viper.GetBool("minio_ssl"),
	}

	if config.Endpoint == "" {
		return storage.MinioConfig{}, errors.New("BLITLINE_MINIO_ENDPOINT is required to upload files")
	}

	if config.AccessKey == "" || config.SecretKey == "" {
		return storage.MinioConfig{}, errors.New("BLITLINE_MINIO_ACCESS_KEY and BLITLINE_MINIO_SECRET_KEY are required to upload files")
	}

	return config, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
