package valuesource

import (
	"fmt"

	"github.com/goliatone/go-apispec/pkg/resolve"
)

// Func adapts a lookup function. The bool result reports whether the name is
// defined.
type Func func(name string) (any, bool)

var _ resolve.ValueSource = Func(nil)

// Has reports whether name is defined.
func (f Func) Has(name string) bool {
	_, ok := f(name)
	return ok
}

// Value returns the value the function yields for name.
func (f Func) Value(name string) (any, error) {
	value, ok := f(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", resolve.ErrUnresolvedValue, name)
	}
	return value, nil
}

// Chain consults sources in order; the first one that Has a name wins.
type Chain []resolve.ValueSource

var _ resolve.ValueSource = Chain(nil)

// Has reports whether any source defines name.
func (c Chain) Has(name string) bool {
	for _, src := range c {
		if src != nil && src.Has(name) {
			return true
		}
	}
	return false
}

// Value returns the value from the first source defining name.
func (c Chain) Value(name string) (any, error) {
	for _, src := range c {
		if src != nil && src.Has(name) {
			return src.Value(name)
		}
	}
	return nil, fmt.Errorf("%w: %q", resolve.ErrUnresolvedValue, name)
}
