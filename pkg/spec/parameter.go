package spec

import (
	"fmt"

	"github.com/goliatone/go-apispec/pkg/openapi"
)

// ParamKey identifies a parameter within its owning scope. Location stays
// empty for $ref declarations until the reference is resolved against a
// document.
type ParamKey struct {
	Location Location
	Name     string
}

// ParameterSpec is the raw declaration handed in by the annotation layer:
// either a $ref pointer, or a direct declaration with a name, location, and
// type or schema.
type ParameterSpec struct {
	Ref         string
	Name        string
	In          string
	Required    bool
	Type        string
	Schema      map[string]any
	Description string
}

// Parameter is the canonical declaration record. A reference marker carries
// only Ref and the name extracted from its terminal segment; direct
// declarations carry a location plus a type (non-body) or schema (body).
type Parameter struct {
	Key         ParamKey
	Ref         string
	Required    bool
	Type        ParamType
	Schema      map[string]any
	Description string
}

// IsRef reports whether the parameter is an unresolved reference marker.
func (p Parameter) IsRef() bool {
	return p.Ref != ""
}

// ParameterSet keeps parameters unique per ParamKey while preserving
// declaration order. Re-declaring a key replaces the record in place, so the
// set never grows beyond the number of distinct keys.
type ParameterSet struct {
	order   []ParamKey
	entries map[ParamKey]Parameter
}

// NewParameterSet returns an empty set.
func NewParameterSet() *ParameterSet {
	return &ParameterSet{entries: make(map[ParamKey]Parameter)}
}

// Declare validates and normalizes raw into a Parameter and stores it under
// its composite key. Validation failures wrap ErrInvalidDeclaration.
func (s *ParameterSet) Declare(raw ParameterSpec) (Parameter, error) {
	param, err := normalizeParameter(raw)
	if err != nil {
		return Parameter{}, err
	}
	s.Put(param)
	return param, nil
}

// Put stores an already-normalized parameter, replacing any entry sharing its
// key while keeping the original position.
func (s *ParameterSet) Put(param Parameter) {
	if s.entries == nil {
		s.entries = make(map[ParamKey]Parameter)
	}
	if _, exists := s.entries[param.Key]; !exists {
		s.order = append(s.order, param.Key)
	}
	s.entries[param.Key] = param
}

// Len returns the number of distinct parameter keys.
func (s *ParameterSet) Len() int {
	return len(s.order)
}

// Get returns the parameter stored under key.
func (s *ParameterSet) Get(key ParamKey) (Parameter, bool) {
	param, ok := s.entries[key]
	return param, ok
}

// All returns the parameters in declaration order.
func (s *ParameterSet) All() []Parameter {
	out := make([]Parameter, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.entries[key])
	}
	return out
}

// normalizeParameter implements the declaration contract: reference markers
// get a shape check only (their target is unknown until a document is
// consulted); direct declarations must carry a valid location plus a schema
// (body) or one of the six allowed types (everything else). Path parameters
// are always required.
func normalizeParameter(raw ParameterSpec) (Parameter, error) {
	if raw.Ref != "" {
		name, err := openapi.RefName(raw.Ref)
		if err != nil {
			return Parameter{}, fmt.Errorf("%w: %v", ErrInvalidDeclaration, err)
		}
		return Parameter{
			Key:         ParamKey{Name: name},
			Ref:         raw.Ref,
			Description: raw.Description,
		}, nil
	}

	if raw.In == "" {
		return Parameter{}, fmt.Errorf("%w: parameter %q is missing a location", ErrInvalidDeclaration, raw.Name)
	}
	location, err := ParseLocation(raw.In)
	if err != nil {
		return Parameter{}, fmt.Errorf("%w: %v", ErrInvalidDeclaration, err)
	}
	if raw.Name == "" {
		return Parameter{}, fmt.Errorf("%w: parameter in %q is missing a name", ErrInvalidDeclaration, raw.In)
	}

	param := Parameter{
		Key:         ParamKey{Location: location, Name: raw.Name},
		Required:    raw.Required,
		Description: raw.Description,
	}

	if location == LocationBody {
		if raw.Schema == nil {
			return Parameter{}, fmt.Errorf("%w: body parameter %q requires a schema", ErrInvalidDeclaration, raw.Name)
		}
		param.Schema = raw.Schema
	} else {
		if raw.Type == "" {
			return Parameter{}, fmt.Errorf("%w: parameter %q requires a type", ErrInvalidDeclaration, raw.Name)
		}
		ptype, err := ParseParamType(raw.Type)
		if err != nil {
			return Parameter{}, fmt.Errorf("%w: %v", ErrInvalidDeclaration, err)
		}
		param.Type = ptype
	}

	if location == LocationPath {
		param.Required = true
	}

	return param, nil
}
