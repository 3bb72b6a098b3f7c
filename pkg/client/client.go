package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/ryanuber/go-glob"
	"github.com/sirupsen/logrus"
	"github.com/thebartekbanach/blitline/pkg/job"
)

type httpRequestFunc func(req *http.Request) (*http.Response, error)

type Client struct {
	config      Config
	logger      logrus.FieldLogger
	makeRequest httpRequestFunc
}

var _ JobsClient = (*Client)(nil)

func NewClient(config Config, logger logrus.FieldLogger) *Client {
	httpClient := &http.Client{Timeout: config.Timeout}
	return &Client{config, logger, httpClient.Do}
}

func (c *Client) Submit(ctx context.Context, j *job.Job) (SubmitResult, error) {
	for _, dest := range j.Destinations() {
		if !c.isAllowedBucket(dest.Bucket()) {
			return SubmitResult{}, errors.Wrapf(ErrDestinationNotAllowed, "destination %s", dest)
		}
	}

	body, err := json.Marshal(j)
	if err != nil {
		return SubmitResult{}, errors.Wrap(err, "cannot encode job")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.config.ServiceURL, "job"), bytes.NewReader(body))
	if err != nil {
		return SubmitResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.WithField("src", j.Src.String()).Debug("submitting job")

	var response struct {
		Results struct {
			JobID  string        `json:"job_id"`
			Images []ImageResult `json:"images"`
			Error  string        `json:"error"`
		} `json:"results"`
	}
	if err := c.do(req, &response); err != nil {
		return SubmitResult{}, err
	}

	if response.Results.Error != "" {
		return SubmitResult{}, errors.Wrap(ErrJobRejected, response.Results.Error)
	}

	if response.Results.JobID == "" {
		return SubmitResult{}, errors.Wrap(ErrMalformedResponse, "job_id missing")
	}

	c.logger.WithFields(logrus.Fields{
		"job_id": response.Results.JobID,
		"images": len(response.Results.Images),
	}).Info("job submitted")

	return SubmitResult{
		JobID:  response.Results.JobID,
		Images: response.Results.Images,
	}, nil
}

// Await blocks until the service reports the job as finished or ctx is done.
// The wait is a single long polling request.
func (c *Client) Await(ctx context.Context, jobID string) (JobResult, error) {
	if jobID == "" {
		return JobResult{}, ErrJobIDRequired
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(c.config.PollURL, "listen", url.PathEscape(jobID)), nil)
	if err != nil {
		return JobResult{}, err
	}

	// results come back as a JSON document encoded in a string
	var response struct {
		Results string `json:"results"`
	}
	if err := c.do(req, &response); err != nil {
		return JobResult{}, err
	}

	var result JobResult
	if err := json.Unmarshal([]byte(response.Results), &result); err != nil {
		return JobResult{}, errors.Wrap(ErrMalformedResponse, err.Error())
	}

	if result.JobID == "" {
		result.JobID = jobID
	}

	logger := c.logger.WithField("job_id", jobID)
	if result.Error != "" {
		logger.WithField("error", result.Error).Warn("job failed")
	} else {
		logger.Info("job finished")
	}

	return result, nil
}

func (c *Client) do(req *http.Request, target interface{}) error {
	response, err := c.makeRequest(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrResponseStatusNotOK, "%s %s returned %d", req.Method, req.URL.Path, response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return errors.Wrap(ErrMalformedResponse, err.Error())
	}

	return nil
}

func (c *Client) endpoint(base string, segments ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}

func (c *Client) isAllowedBucket(bucket string) bool {
	if len(c.config.AllowedBuckets) == 0 {
		return true
	}

	for _, pattern := range c.config.AllowedBuckets {
		if glob.Glob(pattern, bucket) {
			return true
		}
	}

	return false
}

var (
	ErrDestinationNotAllowed = errors.New("destination bucket not allowed")
	ErrResponseStatusNotOK   = errors.New("response status not OK")
	ErrJobRejected           = errors.New("job rejected by service")
	ErrMalformedResponse     = errors.New("malformed service response")
	ErrJobIDRequired         = errors.New("job id is required")
)
