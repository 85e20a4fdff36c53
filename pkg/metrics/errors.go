package metrics

import (
	"errors"
	"fmt"
)

// ErrRegister is returned by Init when a collector cannot be registered,
// usually because a metric name is already taken on the registry.
var ErrRegister = errors.New("metrics register failed")

// register runs fn and turns a promauto panic into an ErrRegister error.
func register(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if cause, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrRegister, cause)
				return
			}
			err = fmt.Errorf("%w: %v", ErrRegister, r)
		}
	}()
	fn()
	return nil
}
