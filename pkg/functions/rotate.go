package functions

import "github.com/thebartekbanach/blitline/pkg/validate"

type Rotate struct {
	descriptor
}

var _ Function = (*Rotate)(nil)

// NewRotate rotates clockwise by amount degrees.
func NewRotate(amount float64) (*Rotate, error) {
	if err := validate.That(amount >= -360 && amount <= 360, "rotation %v is out of range -360..360", amount); err != nil {
		return nil, err
	}

	fn := &Rotate{newDescriptor()}
	fn.setParam("amount", amount)
	return fn, nil
}

func (fn *Rotate) Name() string {
	return "rotate"
}
