package functions

import "github.com/thebartekbanach/blitline/pkg/validate"

type Crop struct {
	descriptor
}

var _ Function = (*Crop)(nil)

func NewCrop(x, y, width, height int) (*Crop, error) {
	if err := validate.That(x >= 0 && y >= 0, "crop origin %d,%d cannot be negative", x, y); err != nil {
		return nil, err
	}

	if err := validate.That(width > 0 && height > 0, "crop size %dx%d must be positive", width, height); err != nil {
		return nil, err
	}

	fn := &Crop{newDescriptor()}
	fn.setParam("x", x)
	fn.setParam("y", y)
	fn.setParam("width", width)
	fn.setParam("height", height)
	return fn, nil
}

func (fn *Crop) Name() string {
	return "crop"
}

// Gravity anchors the crop box, x and y become offsets from that anchor.
func (fn *Crop) Gravity(gravity string) (*Crop, error) {
	if err := validate.That(isSupportedGravity(gravity), "gravity '%s' is not supported", gravity); err != nil {
		return nil, err
	}

	fn.setParam("gravity", gravity)
	return fn, nil
}

func isSupportedGravity(gravity string) bool {
	for _, supported := range supportedGravities {
		if supported == gravity {
			return true
		}
	}

	return false
}

var supportedGravities = []string{
	"NorthWestGravity",
	"NorthGravity",
	"NorthEastGravity",
	"WestGravity",
	"CenterGravity",
	"EastGravity",
	"SouthWestGravity",
	"SouthGravity",
	"SouthEastGravity",
}
