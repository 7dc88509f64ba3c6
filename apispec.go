// Package apispec validates declarative API test annotations against swagger
// 2.0 documents and resolves them into concrete request inputs. Declaration
// helpers live in pkg/spec, the document store in pkg/openapi, and run-time
// resolution in pkg/resolve.
package apispec

import (
	"context"

	internalLoader "github.com/goliatone/go-apispec/internal/openapi/loader"
	pkgopenapi "github.com/goliatone/go-apispec/pkg/openapi"
)

// NewLoader constructs a document loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// LoadInto loads src and registers the resulting document in docs under name.
func LoadInto(ctx context.Context, docs *pkgopenapi.Registry, name string, src pkgopenapi.Source, options ...pkgopenapi.LoaderOption) (pkgopenapi.Document, error) {
	doc, err := NewLoader(options...).Load(ctx, src)
	if err != nil {
		return pkgopenapi.Document{}, err
	}
	if err := docs.Register(name, doc); err != nil {
		return pkgopenapi.Document{}, err
	}
	return doc, nil
}
