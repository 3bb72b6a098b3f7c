package functions

import "github.com/thebartekbanach/blitline/pkg/validate"

// ResizeToFit scales the image down or up so it fits inside the box while
// keeping its aspect ratio. A zero dimension is left unconstrained.
type ResizeToFit struct {
	descriptor
}

var _ Function = (*ResizeToFit)(nil)

func NewResizeToFit(width, height int) (*ResizeToFit, error) {
	if err := validate.That(width >= 0 && height >= 0, "dimensions %dx%d cannot be negative", width, height); err != nil {
		return nil, err
	}

	if err := validate.That(width > 0 || height > 0, "at least one of width and height is required"); err != nil {
		return nil, err
	}

	fn := &ResizeToFit{newDescriptor()}
	if width > 0 {
		fn.setParam("width", width)
	}
	if height > 0 {
		fn.setParam("height", height)
	}

	return fn, nil
}

func (fn *ResizeToFit) Name() string {
	return "resize_to_fit"
}

// OnlyShrinkLarger leaves images already smaller than the box untouched.
func (fn *ResizeToFit) OnlyShrinkLarger(enabled bool) *ResizeToFit {
	fn.setParam("only_shrink_larger", enabled)
	return fn
}
