package job

import (
	"encoding/json"
	"net/url"

	"github.com/thebartekbanach/blitline/pkg/location"
	"github.com/thebartekbanach/blitline/pkg/validate"
)

// Source is the image a job starts from, either a public URL or an S3 location.
type Source struct {
	url      string
	location *location.Location
}

func URLSource(rawURL string) (Source, error) {
	if err := validateHTTPURL(rawURL); err != nil {
		return Source{}, err
	}

	return Source{url: rawURL}, nil
}

func LocationSource(loc *location.Location) Source {
	return Source{location: loc}
}

// Location is nil for URL sources.
func (s Source) Location() *location.Location {
	return s.location
}

func (s Source) IsZero() bool {
	return s.url == "" && s.location == nil
}

func (s Source) String() string {
	if s.location != nil {
		return s.location.String()
	}

	return s.url
}

func (s Source) MarshalJSON() ([]byte, error) {
	if s.location != nil {
		return json.Marshal(s.location)
	}

	return json.Marshal(s.url)
}

func validateHTTPURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	valid := err == nil && parsed.IsAbs() && parsed.Host != "" && (parsed.Scheme == "http" || parsed.Scheme == "https")

	return validate.That(valid, "'%s' is not an absolute http(s) URL", rawURL)
}
