package functions

import (
	"github.com/thebartekbanach/blitline/pkg/location"
	"github.com/thebartekbanach/blitline/pkg/validate"
)

// Save tells the service where to write the result of a function. Without a
// destination the result lands in the service's own temporary storage.
type Save struct {
	ImageIdentifier string
	Destination     *location.Location
	Quality         int
}

func NewSave(identifier string, destination *location.Location) (*Save, error) {
	if err := validate.That(identifier != "", "image identifier cannot be empty"); err != nil {
		return nil, err
	}

	return &Save{ImageIdentifier: identifier, Destination: destination}, nil
}

// WithQuality sets the JPEG/WebP quality of the saved image, from 1 to 100.
func (s *Save) WithQuality(quality int) (*Save, error) {
	if err := validate.That(quality >= 1 && quality <= 100, "quality %d is out of range 1..100", quality); err != nil {
		return nil, err
	}

	s.Quality = quality
	return s, nil
}
