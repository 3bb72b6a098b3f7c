//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/sirupsen/logrus"
	"github.com/thebartekbanach/blitline/pkg/client"
	"github.com/thebartekbanach/blitline/pkg/storage"
	"github.com/thebartekbanach/blitline/pkg/submission"
)

func InitializeSubmission(ctx context.Context, logger logrus.FieldLogger) (submission.SubmissionService, func(), error) {
	wire.Build(
		InitializeClientConfig,
		client.NewClient,
		wire.Bind(new(client.JobsClient), new(*client.Client)),

		InitializeJobsRepository,
		submission.NewSubmissionService,
	)

	return nil, nil, nil
}

func InitializeLocationStorage(logger logrus.FieldLogger) (storage.LocationStorage, error) {
	wire.Build(
		InitializeMinioConfig,
		storage.NewMinioConnection,
		wire.Bind(new(storage.Connection), new(*storage.MinioConnection)),
		storage.NewLocationStorage,
	)

	return nil, nil
}
