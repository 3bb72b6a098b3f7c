package functions

import (
	"github.com/google/uuid"
	"github.com/thebartekbanach/blitline/pkg/location"
	"github.com/thebartekbanach/blitline/pkg/validate"
)

type descriptor struct {
	params    map[string]interface{}
	save      *Save
	functions []Function
}

func newDescriptor() descriptor {
	return descriptor{params: make(map[string]interface{})}
}

func (d *descriptor) setParam(name string, value interface{}) {
	if d.params == nil {
		d.params = make(map[string]interface{})
	}

	d.params[name] = value
}

func (d *descriptor) Params() map[string]interface{} {
	params := make(map[string]interface{}, len(d.params))
	for name, value := range d.params {
		params[name] = value
	}

	return params
}

func (d *descriptor) Save() *Save {
	return d.save
}

func (d *descriptor) Functions() []Function {
	functions := make([]Function, len(d.functions))
	copy(functions, d.functions)
	return functions
}

// SaveAs makes the service store the result of the function under identifier,
// and upload it to destination when one is given.
func (d *descriptor) SaveAs(identifier string, destination *location.Location) error {
	save, err := NewSave(identifier, destination)
	if err != nil {
		return err
	}

	d.save = save
	return nil
}

// SaveWithGeneratedIdentifier works like SaveAs with a random identifier, which
// is returned.
func (d *descriptor) SaveWithGeneratedIdentifier(destination *location.Location) string {
	identifier := uuid.New().String()
	d.save = &Save{ImageIdentifier: identifier, Destination: destination}
	return identifier
}

// AddFunction chains child onto the result of the function.
func (d *descriptor) AddFunction(child Function) error {
	if err := validate.That(!IsNil(child), "child function cannot be nil"); err != nil {
		return err
	}

	d.functions = append(d.functions, child)
	return nil
}
