// Package job assembles functions and their source image into the request
// body the service accepts.
package job

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/thebartekbanach/blitline/pkg/functions"
	"github.com/thebartekbanach/blitline/pkg/location"
	"github.com/thebartekbanach/blitline/pkg/validate"
)

type Job struct {
	ApplicationID string
	Src           Source
	PostbackURL   string
	Functions     []functions.Function
}

func New(applicationID string, src Source, fns ...functions.Function) (*Job, error) {
	if err := validate.That(applicationID != "", "application id cannot be empty"); err != nil {
		return nil, err
	}

	if err := validate.That(!src.IsZero(), "job source is required"); err != nil {
		return nil, err
	}

	if err := validate.That(len(fns) > 0, "job requires at least one function"); err != nil {
		return nil, err
	}

	for i, fn := range fns {
		if err := validate.That(!functions.IsNil(fn), "function at index %d is nil", i); err != nil {
			return nil, err
		}
	}

	return &Job{
		ApplicationID: applicationID,
		Src:           src,
		Functions:     fns,
	}, nil
}

// WithPostbackURL makes the service POST the job results to rawURL once done.
func (j *Job) WithPostbackURL(rawURL string) (*Job, error) {
	if err := validateHTTPURL(rawURL); err != nil {
		return nil, err
	}

	j.PostbackURL = rawURL
	return j, nil
}

// Destinations lists every S3 location the job writes to, depth first.
func (j *Job) Destinations() []*location.Location {
	var destinations []*location.Location

	var walk func(fns []functions.Function)
	walk = func(fns []functions.Function) {
		for _, fn := range fns {
			if save := fn.Save(); save != nil && save.Destination != nil {
				destinations = append(destinations, save.Destination)
			}

			walk(fn.Functions())
		}
	}

	walk(j.Functions)
	return destinations
}

// Signature identifies the job content. Jobs with the same source, functions
// and parameters share it.
func (j *Job) Signature() (string, error) {
	body, err := json.Marshal(j)
	if err != nil {
		return "", errors.Wrap(err, "cannot encode job")
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

type jobJSON struct {
	ApplicationID string         `json:"application_id"`
	Src           Source         `json:"src"`
	PostbackURL   string         `json:"postback_url,omitempty"`
	Functions     []functionJSON `json:"functions"`
}

type functionJSON struct {
	Name      string                 `json:"name"`
	Params    map[string]interface{} `json:"params,omitempty"`
	Save      *saveJSON              `json:"save,omitempty"`
	Functions []functionJSON         `json:"functions,omitempty"`
}

type saveJSON struct {
	ImageIdentifier string             `json:"image_identifier"`
	Destination     *location.Location `json:"s3_destination,omitempty"`
	Quality         int                `json:"quality,omitempty"`
}

func (j *Job) MarshalJSON() ([]byte, error) {
	return json.Marshal(jobJSON{
		ApplicationID: j.ApplicationID,
		Src:           j.Src,
		PostbackURL:   j.PostbackURL,
		Functions:     toFunctionsJSON(j.Functions),
	})
}

func toFunctionsJSON(fns []functions.Function) []functionJSON {
	if len(fns) == 0 {
		return nil
	}

	result := make([]functionJSON, len(fns))
	for i, fn := range fns {
		result[i] = functionJSON{
			Name:      fn.Name(),
			Params:    fn.Params(),
			Functions: toFunctionsJSON(fn.Functions()),
		}

		if save := fn.Save(); save != nil {
			result[i].Save = &saveJSON{save.ImageIdentifier, save.Destination, save.Quality}
		}
	}

	return result
}
