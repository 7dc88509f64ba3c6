package valuesource

import (
	"fmt"

	"github.com/goliatone/go-apispec/pkg/resolve"
)

// Map adapts a plain map to the ValueSource contract.
type Map map[string]any

var _ resolve.ValueSource = Map(nil)

// Has reports whether name is defined.
func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Value returns the value stored under name.
func (m Map) Value(name string) (any, error) {
	value, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", resolve.ErrUnresolvedValue, name)
	}
	return value, nil
}
