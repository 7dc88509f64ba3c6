package resolve

import (
	"errors"
	"fmt"
)

// ValueSource supplies live values for parameter names and path placeholders.
// Hosts adapt whatever context object their test runner carries; common
// adapters live in pkg/valuesource.
type ValueSource interface {
	Has(name string) bool
	Value(name string) (any, error)
}

// ErrUnresolvedValue is returned when a declared name has no value in the
// supplied source.
var ErrUnresolvedValue = errors.New("resolve: unresolved value")

func lookup(src ValueSource, name string) (any, error) {
	if src == nil || !src.Has(name) {
		return nil, fmt.Errorf("%w: %q is not defined on the supplied context", ErrUnresolvedValue, name)
	}
	return src.Value(name)
}
