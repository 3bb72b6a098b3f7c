// Package functions holds descriptors of the operations the service can run
// on an image. Each descriptor validates its parameters when they are set,
// a failed call never changes the descriptor.
package functions

import "reflect"

type Function interface {
	// Name is the operation identifier used as the function name in a job.
	Name() string

	// Params returns a copy of the operation parameters.
	Params() map[string]interface{}

	// Save is nil when the result of the function is not written anywhere.
	Save() *Save

	// Functions lists the functions applied to the result of this one.
	Functions() []Function
}

// IsNil reports whether fn is nil or holds a nil pointer.
func IsNil(fn Function) bool {
	if fn == nil {
		return true
	}

	value := reflect.ValueOf(fn)
	return value.Kind() == reflect.Ptr && value.IsNil()
}
