package apispec_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	apispec "github.com/goliatone/go-apispec"
	pkgopenapi "github.com/goliatone/go-apispec/pkg/openapi"
	"github.com/goliatone/go-apispec/pkg/resolve"
	"github.com/goliatone/go-apispec/pkg/spec"
	"github.com/goliatone/go-apispec/pkg/valuesource"
)

const petstoreDocument = `swagger: "2.0"
info:
  title: Petstore
  version: 1.0.0
basePath: /v2
consumes:
  - application/json
produces:
  - application/json
paths: {}
parameters:
  skipParam:
    name: skipper
    in: path
    required: true
    type: integer
`

func TestDeclareAndResolveAgainstLoadedDocument(t *testing.T) {
	ctx := context.Background()
	files := fstest.MapFS{"petstore.yaml": &fstest.MapFile{Data: []byte(petstoreDocument)}}

	docs := pkgopenapi.NewRegistry()
	if _, err := apispec.LoadInto(ctx, docs, "petstore", pkgopenapi.SourceFromFS("petstore.yaml"), pkgopenapi.WithFileSystem(files)); err != nil {
		t.Fatalf("load document: %v", err)
	}
	docs.Freeze()

	item, err := spec.DeclarePath(docs, "/posts/{post_id}")
	if err != nil {
		t.Fatalf("declare path: %v", err)
	}
	op := item.DeclareOperation("GET", spec.WithProduces("application/xml"))
	if _, err := op.DeclareParameter(spec.ParameterSpec{Name: "post_id", In: "path", Type: "integer"}); err != nil {
		t.Fatalf("declare parameter: %v", err)
	}
	if _, err := op.DeclareParameter(spec.ParameterSpec{Ref: "#/parameters/skipParam"}); err != nil {
		t.Fatalf("declare ref parameter: %v", err)
	}
	if err := op.DeclareResponse(200, "a post"); err != nil {
		t.Fatalf("declare response: %v", err)
	}

	resolver := resolve.New(docs)
	values := valuesource.Map{"post_id": 123, "skipper": true}

	params, err := resolver.Params(item, op, values)
	if err != nil {
		t.Fatalf("resolve params: %v", err)
	}
	wantParams := []resolve.ResolvedParam{
		{Name: "post_id", In: spec.LocationPath, Value: 123},
		{Name: "skipper", In: spec.LocationPath, Value: true},
	}
	if diff := cmp.Diff(wantParams, params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}

	path, err := resolver.Path(item, values)
	if err != nil {
		t.Fatalf("resolve path: %v", err)
	}
	if path != "/v2/posts/123" {
		t.Fatalf("unexpected path %q", path)
	}

	headers, err := resolver.Headers(item, op)
	if err != nil {
		t.Fatalf("resolve headers: %v", err)
	}
	wantHeaders := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/xml",
	}
	if diff := cmp.Diff(wantHeaders, headers); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
}
