package spec

import "fmt"

// Location is where a parameter travels in the request.
type Location string

const (
	LocationPath     Location = "path"
	LocationQuery    Location = "query"
	LocationHeader   Location = "header"
	LocationFormData Location = "formData"
	LocationBody     Location = "body"
)

// ParseLocation accepts only the canonical swagger spellings. Near-miss
// variants such as "form_data" are rejected rather than coerced.
func ParseLocation(raw string) (Location, error) {
	switch Location(raw) {
	case LocationPath, LocationQuery, LocationHeader, LocationFormData, LocationBody:
		return Location(raw), nil
	}
	return "", fmt.Errorf("spec: unknown parameter location %q", raw)
}

// ParamType enumerates the non-body parameter types swagger 2.0 allows.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeInteger ParamType = "integer"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array"
	TypeFile    ParamType = "file"
)

// ParseParamType validates a non-body parameter type.
func ParseParamType(raw string) (ParamType, error) {
	switch ParamType(raw) {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeArray, TypeFile:
		return ParamType(raw), nil
	}
	return "", fmt.Errorf("spec: unknown parameter type %q", raw)
}
