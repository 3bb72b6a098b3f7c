// Package location describes objects stored in S3, used both as job sources
// and as destinations the service writes results to.
package location

import (
	"encoding/json"
	"hash/fnv"
	"regexp"

	"github.com/thebartekbanach/blitline/pkg/validate"
)

const (
	bucketSubpattern = `([\w.-]{3,63})`

	CacheControlHeaderName   = "Cache-Control"
	CacheControlForeverValue = "public, max-age=31536000"
)

var (
	BucketPattern = regexp.MustCompile(`^` + bucketSubpattern + `$`)

	// keys may contain slashes but never line terminators
	URLPattern = regexp.MustCompile(`^s3://` + bucketSubpattern + `/([^\n\r\x{85}\x{2028}\x{2029}]+)$`)
)

// Identity is the comparable part of a Location. Headers never take part in it.
type Identity struct {
	Bucket string
	Key    string
}

// Location points at an object in S3. Headers are attached to the object
// when the service writes it back and are served along with it over HTTP.
//
// A Location is not safe for concurrent mutation.
type Location struct {
	bucket  string
	key     string
	headers map[string]string
}

func New(bucket, key string, headers map[string]string) (*Location, error) {
	if err := validate.That(BucketPattern.MatchString(bucket), "bucket '%s' is not a valid S3 bucket name", bucket); err != nil {
		return nil, err
	}

	copied := make(map[string]string, len(headers))
	for name, value := range headers {
		copied[name] = value
	}

	return &Location{bucket, key, copied}, nil
}

// Parse reads a location written as s3://bucket/key/with/slashes.
func Parse(s3URL string) (*Location, error) {
	matches := URLPattern.FindStringSubmatch(s3URL)
	if err := validate.That(matches != nil, "'%s' is not a valid S3 URL", s3URL); err != nil {
		return nil, err
	}

	return New(matches[1], matches[2], nil)
}

func MustParse(s3URL string) *Location {
	loc, err := Parse(s3URL)
	if err != nil {
		panic(err)
	}

	return loc
}

func (l *Location) Name() string {
	return "s3"
}

func (l *Location) Bucket() string {
	return l.bucket
}

func (l *Location) Key() string {
	return l.key
}

func (l *Location) ID() Identity {
	return Identity{l.bucket, l.key}
}

// Headers returns a copy of the headers, changes to it are not reflected in l.
func (l *Location) Headers() map[string]string {
	headers := make(map[string]string, len(l.headers))
	for name, value := range l.headers {
		headers[name] = value
	}

	return headers
}

// WithHeader sets a header sent along with the object when it is written
// and returns l.
func (l *Location) WithHeader(name, value string) *Location {
	if l.headers == nil {
		l.headers = make(map[string]string)
	}

	l.headers[name] = value
	return l
}

// WithCacheForeverHeader lets proxies cache the object for a year. Suitable
// for uniquely named assets that never change.
func (l *Location) WithCacheForeverHeader() *Location {
	return l.WithHeader(CacheControlHeaderName, CacheControlForeverValue)
}

func (l *Location) Equal(other *Location) bool {
	if l == nil || other == nil {
		return l == other
	}

	return l.ID() == other.ID()
}

func (l *Location) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(l.bucket))
	h.Write([]byte{0})
	h.Write([]byte(l.key))
	return h.Sum64()
}

func (l *Location) String() string {
	return "s3://" + l.bucket + "/" + l.key
}

type locationJSON struct {
	Name    string            `json:"name"`
	Bucket  string            `json:"bucket"`
	Key     string            `json:"key"`
	Headers map[string]string `json:"headers,omitempty"`
}

func (l *Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(locationJSON{
		Name:    l.Name(),
		Bucket:  l.bucket,
		Key:     l.key,
		Headers: l.headers,
	})
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var raw locationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := New(raw.Bucket, raw.Key, raw.Headers)
	if err != nil {
		return err
	}

	*l = *parsed
	return nil
}
