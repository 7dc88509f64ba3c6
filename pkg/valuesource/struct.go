package valuesource

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-apispec/pkg/resolve"
)

// FromStruct exposes the exported fields and zero-argument methods of v by
// name, mirroring the attribute-style context objects host test runners carry.
// Methods may return a single value or a (value, error) pair; a non-nil error
// surfaces from Value. Fields can publish an alternate lookup name through an
// `apispec` struct tag, which keeps snake_case parameter names reachable from
// Go field names.
func FromStruct(v any) resolve.ValueSource {
	return structSource{value: reflect.ValueOf(v)}
}

type structSource struct {
	value reflect.Value
}

var _ resolve.ValueSource = structSource{}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Has reports whether a field or method named name is reachable.
func (s structSource) Has(name string) bool {
	_, ok, _ := s.find(name)
	return ok
}

// Value returns the field value or method result registered under name.
func (s structSource) Value(name string) (any, error) {
	value, ok, err := s.find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", resolve.ErrUnresolvedValue, name)
	}
	if err != nil {
		return nil, fmt.Errorf("valuesource: %q: %w", name, err)
	}
	return value, nil
}

func (s structSource) find(name string) (any, bool, error) {
	v := s.value
	if !v.IsValid() {
		return nil, false, nil
	}

	if method := v.MethodByName(name); method.IsValid() {
		mt := method.Type()
		switch {
		case mt.NumIn() == 0 && mt.NumOut() == 1:
			return method.Call(nil)[0].Interface(), true, nil
		case mt.NumIn() == 0 && mt.NumOut() == 2 && mt.Out(1).Implements(errorType):
			results := method.Call(nil)
			if errValue := results[1]; !errValue.IsNil() {
				return nil, true, errValue.Interface().(error)
			}
			return results[0].Interface(), true, nil
		}
	}

	elem := v
	for elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return nil, false, nil
		}
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, false, nil
	}

	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Name == name || field.Tag.Get("apispec") == name {
			return elem.Field(i).Interface(), true, nil
		}
	}
	return nil, false, nil
}
