package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/franela/goblin"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/thebartekbanach/blitline/pkg/functions"
	"github.com/thebartekbanach/blitline/pkg/job"
	"github.com/thebartekbanach/blitline/pkg/location"
	testutils "github.com/thebartekbanach/blitline/test/utils"
)

type httpResponseBody struct {
	io.Reader
}

func (body *httpResponseBody) Close() error {
	return nil
}

func testReqFunc(statusCode int, response string, callError error, requestAssert func(req *http.Request)) httpRequestFunc {
	return func(req *http.Request) (*http.Response, error) {
		requestAssert(req)

		if callError != nil {
			return nil, callError
		}

		return &http.Response{
			StatusCode: statusCode,
			Body:       &httpResponseBody{bytes.NewReader([]byte(response))},
		}, nil
	}
}

func noAssertions(req *http.Request) {}

func createTestingJob(destination string) *job.Job {
	stretch, _ := functions.NewContrastStretchChannel(10)
	stretch.SaveAs("stretched", location.MustParse(destination))

	src, _ := job.URLSource("https://example.com/image.jpg")
	j, _ := job.New("app-id", src, stretch)
	return j
}

func createTestingClient(config Config, makeRequest httpRequestFunc) (*Client, *logrustest.Hook) {
	logger, hook := logrustest.NewNullLogger()
	return &Client{config, logger, makeRequest}, hook
}

func TestClient(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Submit", func() {
		g.It("Should post job JSON to job endpoint", func() {
			config := Config{ServiceURL: "https://api.example.com/"}
			j := createTestingJob("s3://output-bucket/image.jpg")
			expectedBody, _ := json.Marshal(j)

			requestMaker := testReqFunc(200, `{"results":{"job_id":"abc","images":[{"image_identifier":"stretched","s3_url":"https://s3.amazonaws.com/output-bucket/image.jpg"}]}}`, nil, func(req *http.Request) {
				g.Assert(req.Method).Equal(http.MethodPost)
				g.Assert(req.URL.String()).Equal("https://api.example.com/job")
				g.Assert(req.Header.Get("Content-Type")).Equal("application/json")

				body, _ := io.ReadAll(req.Body)
				g.Assert(body).Equal(expectedBody)
			})

			client, hook := createTestingClient(config, requestMaker)
			result, err := client.Submit(context.Background(), j)

			g.Assert(err).IsNil()
			g.Assert(result).Equal(SubmitResult{
				JobID: "abc",
				Images: []ImageResult{{
					ImageIdentifier: "stretched",
					S3URL:           "https://s3.amazonaws.com/output-bucket/image.jpg",
				}},
			})
			g.Assert(hook.LastEntry().Message).Equal("job submitted")
			g.Assert(hook.LastEntry().Data["job_id"]).Equal("abc")
		})

		g.It("Should refuse destinations outside allowed buckets without sending request", func() {
			config := Config{ServiceURL: "https://api.example.com", AllowedBuckets: []string{"media-*"}}
			requestMaker := testReqFunc(200, `{}`, nil, func(req *http.Request) {
				g.Fail("request should not be sent")
			})

			client, _ := createTestingClient(config, requestMaker)
			_, err := client.Submit(context.Background(), createTestingJob("s3://private-bucket/image.jpg"))

			g.Assert(errors.Is(err, ErrDestinationNotAllowed)).IsTrue()
		})

		g.It("Should accept destinations matching allowed bucket pattern", func() {
			config := Config{ServiceURL: "https://api.example.com", AllowedBuckets: []string{"other", "media-*"}}
			requestMaker := testReqFunc(200, `{"results":{"job_id":"abc"}}`, nil, noAssertions)

			client, _ := createTestingClient(config, requestMaker)
			_, err := client.Submit(context.Background(), createTestingJob("s3://media-eu/image.jpg"))

			g.Assert(err).IsNil()
		})

		g.It("Should return error when service responds with non-200 status", func() {
			requestMaker := testReqFunc(500, `{}`, nil, noAssertions)

			client, _ := createTestingClient(Config{}, requestMaker)
			_, err := client.Submit(context.Background(), createTestingJob("s3://bucket/image.jpg"))

			g.Assert(errors.Is(err, ErrResponseStatusNotOK)).IsTrue()
		})

		g.It("Should return error reported by service", func() {
			requestMaker := testReqFunc(200, `{"results":{"error":"Missing application_id"}}`, nil, noAssertions)

			client, _ := createTestingClient(Config{}, requestMaker)
			_, err := client.Submit(context.Background(), createTestingJob("s3://bucket/image.jpg"))

			g.Assert(errors.Is(err, ErrJobRejected)).IsTrue()
			g.Assert(err.Error()).Equal("Missing application_id: job rejected by service")
		})

		g.It("Should return error when response has no job id", func() {
			requestMaker := testReqFunc(200, `{"results":{}}`, nil, noAssertions)

			client, _ := createTestingClient(Config{}, requestMaker)
			_, err := client.Submit(context.Background(), createTestingJob("s3://bucket/image.jpg"))

			g.Assert(errors.Is(err, ErrMalformedResponse)).IsTrue()
		})

		g.It("Should return error when response is not JSON", func() {
			requestMaker := testReqFunc(200, `<html>`, nil, noAssertions)

			client, _ := createTestingClient(Config{}, requestMaker)
			_, err := client.Submit(context.Background(), createTestingJob("s3://bucket/image.jpg"))

			g.Assert(errors.Is(err, ErrMalformedResponse)).IsTrue()
		})

		g.It("Should forward transport errors", func() {
			callError := errors.New("connection refused")
			requestMaker := testReqFunc(0, "", callError, noAssertions)

			client, _ := createTestingClient(Config{}, requestMaker)
			_, err := client.Submit(context.Background(), createTestingJob("s3://bucket/image.jpg"))

			g.Assert(err).Equal(callError)
		})
	})

	g.Describe("Await", func() {
		g.It("Should decode results of finished job", func() {
			config := Config{PollURL: "https://cache.example.com"}
			requestMaker := testReqFunc(200, `{"results":"{\"job_id\":\"abc\",\"images\":[{\"image_identifier\":\"stretched\",\"s3_url\":\"https://s3/x.jpg\"}]}"}`, nil, func(req *http.Request) {
				g.Assert(req.Method).Equal(http.MethodGet)
				g.Assert(req.URL.String()).Equal("https://cache.example.com/listen/abc")
			})

			client, _ := createTestingClient(config, requestMaker)
			result, err := client.Await(context.Background(), "abc")

			g.Assert(err).IsNil()
			g.Assert(result).Equal(JobResult{
				JobID:  "abc",
				Images: []ImageResult{{ImageIdentifier: "stretched", S3URL: "https://s3/x.jpg"}},
			})
		})

		g.It("Should return job error as part of result", func() {
			requestMaker := testReqFunc(200, `{"results":"{\"error\":\"image too large\"}"}`, nil, noAssertions)

			client, hook := createTestingClient(Config{}, requestMaker)
			result, err := client.Await(context.Background(), "abc")

			g.Assert(err).IsNil()
			g.Assert(result.JobID).Equal("abc")
			g.Assert(result.Error).Equal("image too large")
			g.Assert(hook.LastEntry().Level).Equal(logrus.WarnLevel)
		})

		g.It("Should require job id", func() {
			client, _ := createTestingClient(Config{}, testReqFunc(200, "", nil, noAssertions))
			_, err := client.Await(context.Background(), "")

			g.Assert(err).Equal(ErrJobIDRequired)
		})

		g.It("Should return error when results are not a JSON document", func() {
			requestMaker := testReqFunc(200, `{"results":"not json"}`, nil, noAssertions)

			client, _ := createTestingClient(Config{}, requestMaker)
			_, err := client.Await(context.Background(), "abc")

			g.Assert(errors.Is(err, ErrMalformedResponse)).IsTrue()
		})
	})
}

func TestClientAgainstHTTPServer(t *testing.T) {
	server := testutils.NewTestHTTPServer()
	server.RespondJSON("/job", http.StatusOK, map[string]interface{}{
		"results": map[string]interface{}{"job_id": "server-job"},
	})
	server.RespondJSON("/listen/server-job", http.StatusOK, map[string]interface{}{
		"results": `{"job_id":"server-job","images":[]}`,
	})
	baseURL := server.Start(t)

	logger, _ := logrustest.NewNullLogger()
	client := NewClient(Config{ServiceURL: baseURL, PollURL: baseURL}, logger)

	submitted, err := client.Submit(context.Background(), createTestingJob("s3://bucket/image.jpg"))
	if err != nil {
		t.Fatalf("Error submitting job: %s", err)
	}

	if submitted.JobID != "server-job" {
		t.Errorf("Expected job id server-job, got: %s", submitted.JobID)
	}

	result, err := client.Await(context.Background(), submitted.JobID)
	if err != nil {
		t.Fatalf("Error awaiting job: %s", err)
	}

	if result.JobID != "server-job" || result.Error != "" {
		t.Errorf("Unexpected job result: %+v", result)
	}

	requests := server.Requests()
	if len(requests) != 2 {
		t.Fatalf("Expected 2 requests, got: %d", len(requests))
	}

	if requests[0].Method != http.MethodPost || requests[0].ContentType != "application/json" {
		t.Errorf("Unexpected submit request: %+v", requests[0])
	}

	var body map[string]interface{}
	if err := json.Unmarshal(requests[0].Body, &body); err != nil || body["application_id"] != "app-id" {
		t.Errorf("Submitted body is not the job JSON: %s", requests[0].Body)
	}
}
