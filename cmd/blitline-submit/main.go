package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thebartekbanach/blitline/pkg/functions"
	"github.com/thebartekbanach/blitline/pkg/job"
	"github.com/thebartekbanach/blitline/pkg/location"
)

type submitOptions struct {
	src          string
	dest         string
	blackPoint   int
	whitePoint   int
	cacheForever bool
	postbackURL  string

	upload         string
	uploadMimeType string

	wait bool
}

func newRootCommand() *cobra.Command {
	opts := submitOptions{}

	cmd := &cobra.Command{
		Use:   "blitline-submit",
		Short: "Submits a contrast stretch job to Blitline",
		Long: `Builds a contrast_stretch_channel job from the given flags and submits it.

Configuration is read from BLITLINE_* environment variables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.src, "src", "", "source image, s3://bucket/key or http(s) URL")
	flags.StringVar(&opts.dest, "dest", "", "destination, s3://bucket/key")
	flags.IntVar(&opts.blackPoint, "black-point", 0, "black point of the contrast stretch")
	flags.IntVar(&opts.whitePoint, "white-point", 0, "white point of the contrast stretch, unset when 0")
	flags.BoolVar(&opts.cacheForever, "cache-forever", false, "serve the result with a one year Cache-Control header")
	flags.StringVar(&opts.postbackURL, "postback-url", "", "URL the service posts results to")
	flags.StringVar(&opts.upload, "upload", "", "local file uploaded to --src before submitting")
	flags.StringVar(&opts.uploadMimeType, "mime-type", "image/jpeg", "content type of the uploaded file")
	flags.BoolVar(&opts.wait, "wait", false, "wait for the job to finish")
	cmd.MarkFlagRequired("src")
	cmd.MarkFlagRequired("dest")

	return cmd
}

func run(ctx context.Context, opts submitOptions) error {
	logger := InitializeLogger()

	applicationID, err := InitializeApplicationID()
	if err != nil {
		return err
	}

	j, err := buildJob(applicationID, opts)
	if err != nil {
		return err
	}

	if opts.upload != "" {
		if err := uploadSource(ctx, logger, j.Src.Location(), opts); err != nil {
			return err
		}
	}

	service, cleanup, err := InitializeSubmission(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	record, err := service.Submit(ctx, j)
	if err != nil {
		return err
	}

	output := interface{}(record)
	if opts.wait {
		result, err := service.Await(ctx, record.JobID)
		if err != nil {
			return err
		}
		output = result
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildJob(applicationID string, opts submitOptions) (*job.Job, error) {
	src, err := parseSource(opts.src)
	if err != nil {
		return nil, err
	}

	dest, err := location.Parse(opts.dest)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --dest")
	}

	if opts.cacheForever {
		dest.WithCacheForeverHeader()
	}

	stretch, err := functions.NewContrastStretchChannel(opts.blackPoint)
	if err != nil {
		return nil, err
	}

	if opts.whitePoint != 0 {
		if _, err := stretch.WhitePoint(opts.whitePoint); err != nil {
			return nil, err
		}
	}

	// Derived from the destination so repeated runs share a job signature.
	if err := stretch.SaveAs(dest.String(), dest); err != nil {
		return nil, err
	}

	j, err := job.New(applicationID, src, stretch)
	if err != nil {
		return nil, err
	}

	if opts.postbackURL != "" {
		return j.WithPostbackURL(opts.postbackURL)
	}

	return j, nil
}

func parseSource(raw string) (job.Source, error) {
	if strings.HasPrefix(raw, "s3://") {
		loc, err := location.Parse(raw)
		if err != nil {
			return job.Source{}, errors.Wrap(err, "invalid --src")
		}

		return job.LocationSource(loc), nil
	}

	src, err := job.URLSource(raw)
	if err != nil {
		return job.Source{}, errors.Wrap(err, "invalid --src")
	}

	return src, nil
}

func uploadSource(ctx context.Context, logger logrus.FieldLogger, src *location.Location, opts submitOptions) error {
	if src == nil {
		return errors.New("--upload requires an s3:// --src")
	}

	file, err := os.Open(opts.upload)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	locationStorage, err := InitializeLocationStorage(logger)
	if err != nil {
		return err
	}

	if err := locationStorage.Upload(ctx, src, file, info.Size(), opts.uploadMimeType); err != nil {
		return errors.Wrapf(err, "cannot upload %s to %s", opts.upload, src)
	}

	logger.WithField("src", src.String()).Info("uploaded source image")
	return nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
