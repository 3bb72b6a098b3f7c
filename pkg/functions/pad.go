package functions

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/thebartekbanach/blitline/pkg/validate"
)

// Pad surrounds the image with a border of size pixels.
type Pad struct {
	descriptor
}

var _ Function = (*Pad)(nil)

func NewPad(size int, color string) (*Pad, error) {
	if err := validate.That(size > 0, "pad size %d must be positive", size); err != nil {
		return nil, err
	}

	parsed, parseErr := colorful.Hex(color)
	if err := validate.That(parseErr == nil, "color '%s' is not a hex color", color); err != nil {
		return nil, err
	}

	fn := &Pad{newDescriptor()}
	fn.setParam("size", size)
	fn.setParam("color", parsed.Hex())
	return fn, nil
}

func (fn *Pad) Name() string {
	return "pad"
}
