package resolve

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-apispec/pkg/openapi"
	"github.com/goliatone/go-apispec/pkg/spec"
)

const (
	headerContentType = "Content-Type"
	headerAccept      = "Accept"
)

// ResolvedParam is one concrete request input.
type ResolvedParam struct {
	Name  string
	In    spec.Location
	Value any
}

// Resolver binds declared metadata to live values. The registry must be fully
// populated (and frozen) before the first call.
type Resolver struct {
	docs *openapi.Registry
}

// New constructs a Resolver reading from docs.
func New(docs *openapi.Registry) *Resolver {
	return &Resolver{docs: docs}
}

// Params resolves the operation's effective parameter set: path-item
// parameters overlaid by operation parameters sharing the same (location,
// name) key, in declaration/merge order. Reference markers are dereferenced
// against the path item's document; every parameter's value is looked up on
// src by name. The first failure aborts the call.
func (r *Resolver) Params(item *spec.PathItem, op *spec.Operation, src ValueSource) ([]ResolvedParam, error) {
	merged := mergeParameters(item, op)
	out := make([]ResolvedParam, 0, len(merged))
	for _, param := range merged {
		resolved, err := r.resolveParam(item.Document(), param, src)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

func mergeParameters(item *spec.PathItem, op *spec.Operation) []spec.Parameter {
	set := spec.NewParameterSet()
	if item != nil {
		for _, param := range item.Parameters().All() {
			set.Put(param)
		}
	}
	if op != nil {
		for _, param := range op.Parameters().All() {
			set.Put(param)
		}
	}
	return set.All()
}

func (r *Resolver) resolveParam(document string, param spec.Parameter, src ValueSource) (ResolvedParam, error) {
	name := param.Key.Name
	location := param.Key.Location

	if param.IsRef() {
		def, err := r.docs.Parameter(document, name)
		if err != nil {
			return ResolvedParam{}, err
		}
		resolved, err := spec.ParseLocation(def.In)
		if err != nil {
			return ResolvedParam{}, fmt.Errorf("resolve: parameter %q in document %q: %w", name, document, err)
		}
		location = resolved
		if def.Name != "" {
			name = def.Name
		}
	}

	value, err := lookup(src, name)
	if err != nil {
		return ResolvedParam{}, err
	}

	return ResolvedParam{Name: name, In: location, Value: value}, nil
}

// Path substitutes every {placeholder} in the path item's template with the
// value src provides under the placeholder's name, then prefixes the
// document's basePath. Concatenation is verbatim: callers own slash hygiene
// between basePath and template.
func (r *Resolver) Path(item *spec.PathItem, src ValueSource) (string, error) {
	doc, err := r.docs.Lookup(item.Document())
	if err != nil {
		return "", err
	}
	substituted, err := expandTemplate(item.Template(), src)
	if err != nil {
		return "", err
	}
	return doc.BasePath() + substituted, nil
}

func expandTemplate(template string, src ValueSource) (string, error) {
	var out strings.Builder
	err := scanTemplate(template, func(text string) {
		out.WriteString(text)
	}, func(name string) error {
		value, err := lookup(src, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(&out, "%v", value)
		return nil
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// Placeholders lists the {placeholder} names in template in order of
// appearance, applying the same scanning rules Path uses during substitution,
// including the rejection of unterminated braces.
func Placeholders(template string) ([]string, error) {
	var names []string
	err := scanTemplate(template, func(string) {}, func(name string) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// scanTemplate walks template left to right, invoking literal for plain text
// and placeholder for each {name}.
func scanTemplate(template string, literal func(string), placeholder func(string) error) error {
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			literal(rest)
			return nil
		}
		literal(rest[:open])
		rest = rest[open+1:]

		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return fmt.Errorf("resolve: unterminated placeholder in template %q", template)
		}
		if err := placeholder(rest[:end]); err != nil {
			return err
		}
		rest = rest[end+1:]
	}
}

// Headers computes content negotiation headers: operation-level
// consumes/produces override the document-level defaults when non-empty, and
// the first entry of each effective list wins. Absent lists yield absent
// headers.
func (r *Resolver) Headers(item *spec.PathItem, op *spec.Operation) (map[string]string, error) {
	doc, err := r.docs.Lookup(item.Document())
	if err != nil {
		return nil, err
	}

	consumes := doc.Consumes()
	produces := doc.Produces()
	if op != nil {
		if declared := op.Consumes(); len(declared) > 0 {
			consumes = declared
		}
		if declared := op.Produces(); len(declared) > 0 {
			produces = declared
		}
	}

	headers := make(map[string]string, 2)
	if len(consumes) > 0 {
		headers[headerContentType] = consumes[0]
	}
	if len(produces) > 0 {
		headers[headerAccept] = produces[0]
	}
	return headers, nil
}
