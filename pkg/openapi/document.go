package openapi

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi2"
)

// Source identifies where a swagger document originated so loaders can operate
// on files, fs.FS entries, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document pairs a parsed swagger 2.0 structure with its origin. Documents are
// immutable once constructed; the registry hands out the same value to every
// reader.
type Document struct {
	source Source
	spec   *openapi2.T
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, spec *openapi2.T) (Document, error) {
	if spec == nil {
		return Document{}, errors.New("openapi: parsed document is required")
	}
	return Document{source: src, spec: spec}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, spec *openapi2.T) Document {
	doc, err := NewDocument(src, spec)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Spec returns the underlying parsed structure. Callers must treat it as
// read-only.
func (d Document) Spec() *openapi2.T {
	return d.spec
}

// BasePath returns the document-level URL prefix, or "" when absent.
func (d Document) BasePath() string {
	if d.spec == nil {
		return ""
	}
	return d.spec.BasePath
}

// Consumes returns a copy of the document-level request media types.
func (d Document) Consumes() []string {
	if d.spec == nil || len(d.spec.Consumes) == 0 {
		return nil
	}
	return append([]string(nil), d.spec.Consumes...)
}

// Produces returns a copy of the document-level response media types.
func (d Document) Produces() []string {
	if d.spec == nil || len(d.spec.Produces) == 0 {
		return nil
	}
	return append([]string(nil), d.spec.Produces...)
}

// Parameter looks up a reusable parameter definition by name.
func (d Document) Parameter(name string) (*openapi2.Parameter, bool) {
	if d.spec == nil || d.spec.Parameters == nil {
		return nil, false
	}
	param, ok := d.spec.Parameters[name]
	if !ok || param == nil {
		return nil, false
	}
	return param, true
}
