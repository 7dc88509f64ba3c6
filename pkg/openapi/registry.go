package openapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
)

var (
	// ErrUnknownDocument is returned when a lookup names a document that was
	// never registered.
	ErrUnknownDocument = errors.New("openapi: unknown document")

	// ErrUnresolvedReference is returned when a $ref points at a parameter
	// definition the named document does not carry.
	ErrUnresolvedReference = errors.New("openapi: unresolved reference")
)

// Registry maps document names to loaded documents. It is populated once at
// start-up, frozen before the first resolution call, and read-only afterwards.
// The registry performs no internal locking; the host must provide
// happens-before ordering between Freeze and any concurrent reads.
type Registry struct {
	names  []string
	docs   map[string]Document
	frozen bool
}

// NewRegistry returns an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[string]Document)}
}

// Register stores doc under name, keeping registration order. Duplicate names
// and post-freeze registrations are rejected.
func (r *Registry) Register(name string, doc Document) error {
	if r.frozen {
		return fmt.Errorf("openapi: registry is frozen, cannot register %q", name)
	}
	if name == "" {
		return errors.New("openapi: document name is required")
	}
	if doc.Spec() == nil {
		return fmt.Errorf("openapi: document %q has no parsed payload", name)
	}
	if _, exists := r.docs[name]; exists {
		return fmt.Errorf("openapi: document %q already registered", name)
	}
	r.names = append(r.names, name)
	r.docs[name] = doc
	return nil
}

// Freeze makes the registry read-only. Hosts call it after all documents are
// loaded and before any resolution starts.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Register is still permitted.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Len returns the number of registered documents.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns the document names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// DefaultName returns the first registered document name, or "" when the
// registry is empty. Path declarations without an explicit document target
// this one.
func (r *Registry) DefaultName() string {
	if len(r.names) == 0 {
		return ""
	}
	return r.names[0]
}

// Lookup returns the document registered under name.
func (r *Registry) Lookup(name string) (Document, error) {
	doc, ok := r.docs[name]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownDocument, name)
	}
	return doc, nil
}

// Parameter dereferences a reusable parameter definition by name within the
// named document.
func (r *Registry) Parameter(docName, paramName string) (*openapi2.Parameter, error) {
	doc, err := r.Lookup(docName)
	if err != nil {
		return nil, err
	}
	param, ok := doc.Parameter(paramName)
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q in document %q", ErrUnresolvedReference, paramName, docName)
	}
	return param, nil
}

// RefName extracts the terminal path segment from a $ref pointer such as
// "#/parameters/skipParam". Anything without a non-empty terminal segment is
// unparseable.
func RefName(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return "", fmt.Errorf("openapi: malformed parameter reference %q", ref)
	}
	return trimmed[idx+1:], nil
}
