package functions

import "github.com/thebartekbanach/blitline/pkg/validate"

// ContrastStretchChannel stretches the histogram of the image between the
// black and white points.
type ContrastStretchChannel struct {
	descriptor
}

var _ Function = (*ContrastStretchChannel)(nil)

func NewContrastStretchChannel(blackPoint int) (*ContrastStretchChannel, error) {
	if err := validate.That(blackPoint >= 0, "black point %d cannot be negative", blackPoint); err != nil {
		return nil, err
	}

	fn := &ContrastStretchChannel{newDescriptor()}
	fn.setParam("black_point", blackPoint)
	return fn, nil
}

func (fn *ContrastStretchChannel) Name() string {
	return "contrast_stretch_channel"
}

func (fn *ContrastStretchChannel) WhitePoint(whitePoint int) (*ContrastStretchChannel, error) {
	blackPoint, _ := fn.params["black_point"].(int)
	if err := validate.That(whitePoint > blackPoint, "white point %d must be greater than black point %d", whitePoint, blackPoint); err != nil {
		return nil, err
	}

	fn.setParam("white_point", whitePoint)
	return fn, nil
}
