package functions

// NoOp passes the image through unchanged, used to save a copy of the source.
type NoOp struct {
	descriptor
}

var _ Function = (*NoOp)(nil)

func NewNoOp() *NoOp {
	return &NoOp{newDescriptor()}
}

func (fn *NoOp) Name() string {
	return "no_op"
}
