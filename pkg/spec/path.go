package spec

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-apispec/pkg/openapi"
)

// PathItem accumulates the declared metadata for one URL template inside one
// document: shared parameters plus one operation per HTTP method.
type PathItem struct {
	document   string
	template   string
	parameters *ParameterSet
	operations map[string]*Operation
	methods    []string
}

type pathConfig struct {
	document string
}

// PathOption customises DeclarePath.
type PathOption func(*pathConfig)

// InDocument pins the path item to a named document instead of the registry
// default.
func InDocument(name string) PathOption {
	return func(cfg *pathConfig) {
		cfg.document = name
	}
}

// DeclarePath validates the template and creates a path item. The target
// document defaults to the first one registered; an empty registry leaves the
// name blank and resolution fails later with an unknown-document error.
func DeclarePath(docs *openapi.Registry, template string, opts ...PathOption) (*PathItem, error) {
	if !strings.HasPrefix(template, "/") {
		return nil, fmt.Errorf("%w: path template %q must start with /", ErrInvalidDeclaration, template)
	}

	cfg := pathConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	document := cfg.document
	if document == "" && docs != nil {
		document = docs.DefaultName()
	}

	return &PathItem{
		document:   document,
		template:   template,
		parameters: NewParameterSet(),
		operations: make(map[string]*Operation),
	}, nil
}

// Document returns the name of the document this path item resolves against.
func (p *PathItem) Document() string {
	return p.document
}

// Template returns the URL template.
func (p *PathItem) Template() string {
	return p.template
}

// Parameters returns the path-item-level parameter set shared by every
// operation.
func (p *PathItem) Parameters() *ParameterSet {
	return p.parameters
}

// DeclareParameter validates raw and stores it at path-item level.
func (p *PathItem) DeclareParameter(raw ParameterSpec) (Parameter, error) {
	return p.parameters.Declare(raw)
}

// DeclareOperation creates or replaces the operation for method. The method is
// normalized to lower case; no other fields are required.
func (p *PathItem) DeclareOperation(method string, opts ...OperationOption) *Operation {
	key := strings.ToLower(method)
	op := newOperation(key)
	for _, opt := range opts {
		opt(op)
	}
	if _, exists := p.operations[key]; !exists {
		p.methods = append(p.methods, key)
	}
	p.operations[key] = op
	return op
}

// Operation returns the operation declared for method, if any.
func (p *PathItem) Operation(method string) (*Operation, bool) {
	op, ok := p.operations[strings.ToLower(method)]
	return op, ok
}

// Operations returns the declared operations in declaration order.
func (p *PathItem) Operations() []*Operation {
	out := make([]*Operation, 0, len(p.methods))
	for _, method := range p.methods {
		out = append(out, p.operations[method])
	}
	return out
}
