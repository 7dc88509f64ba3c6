package spec

import (
	"fmt"
	"strconv"
)

// ResponseCode keys an operation's responses: either an HTTP status in
// [100,600) or the default entry.
type ResponseCode struct {
	status    int
	isDefault bool
}

// IsDefault reports whether the code is the default entry.
func (c ResponseCode) IsDefault() bool {
	return c.isDefault
}

// Status returns the HTTP status, 0 for the default entry.
func (c ResponseCode) Status() int {
	return c.status
}

func (c ResponseCode) String() string {
	if c.isDefault {
		return "default"
	}
	return strconv.Itoa(c.status)
}

// defaultCode is the type of the Default sentinel. Keeping it unexported means
// no string or numeric look-alike can stand in for it.
type defaultCode struct{}

// Default marks the swagger "default" response entry in DeclareResponse.
var Default defaultCode

// Response describes one declared response: a required human-readable
// description plus an optional schema reference.
type Response struct {
	Description string
	Schema      map[string]any
}

// ResponseOption customises DeclareResponse.
type ResponseOption func(*Response)

// WithResponseSchema attaches a schema reference to the response.
func WithResponseSchema(schema map[string]any) ResponseOption {
	return func(resp *Response) {
		resp.Schema = schema
	}
}

// DeclareResponse registers the response for code. code must be an int in
// [100,600) or the Default sentinel; strings are rejected even when they spell
// a valid status or "default". A description is required.
func (o *Operation) DeclareResponse(code any, description string, opts ...ResponseOption) error {
	key, err := parseResponseCode(code)
	if err != nil {
		return err
	}
	if description == "" {
		return fmt.Errorf("%w: response %s requires a description", ErrInvalidDeclaration, key)
	}

	resp := Response{Description: description}
	for _, opt := range opts {
		opt(&resp)
	}
	o.responses[key] = resp
	return nil
}

func parseResponseCode(code any) (ResponseCode, error) {
	switch typed := code.(type) {
	case defaultCode:
		return ResponseCode{isDefault: true}, nil
	case int:
		if typed < 100 || typed >= 600 {
			return ResponseCode{}, fmt.Errorf("%w: response code %d outside [100,600)", ErrInvalidDeclaration, typed)
		}
		return ResponseCode{status: typed}, nil
	default:
		return ResponseCode{}, fmt.Errorf("%w: response code must be an integer or spec.Default, got %T", ErrInvalidDeclaration, code)
	}
}
