package client

import "time"

type Config struct {
	// ServiceURL is the base URL jobs are posted to, e.g. https://api.blitline.com.
	ServiceURL string

	// PollURL is the base URL of the long polling endpoint, e.g. https://cache.blitline.com.
	PollURL string

	// AllowedBuckets are glob patterns matched against every destination
	// bucket of a submitted job. Empty allows any bucket.
	AllowedBuckets []string

	Timeout time.Duration
}
