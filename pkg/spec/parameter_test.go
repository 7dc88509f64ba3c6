package spec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeclareParameterForcesPathRequired(t *testing.T) {
	set := NewParameterSet()

	param, err := set.Declare(ParameterSpec{Name: "post_id", In: "path", Type: "integer", Required: false})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}
	if !param.Required {
		t.Fatal("path parameters must always be required")
	}
}

func TestDeclareParameterReplacesDuplicateKeys(t *testing.T) {
	set := NewParameterSet()

	declarations := []ParameterSpec{
		{Name: "foo", In: "path", Type: "integer"},
		{Name: "foo", In: "path", Type: "string"},
		{Name: "bar", In: "query", Type: "string"},
		{Name: "baz", In: "query", Type: "string"},
	}
	for _, raw := range declarations {
		if _, err := set.Declare(raw); err != nil {
			t.Fatalf("declare %q: %v", raw.Name, err)
		}
	}

	if set.Len() != 3 {
		t.Fatalf("expected 3 distinct parameters, got %d", set.Len())
	}

	foo, ok := set.Get(ParamKey{Location: LocationPath, Name: "foo"})
	if !ok {
		t.Fatal("parameter foo not found")
	}
	if foo.Type != TypeString {
		t.Fatalf("re-declaration should replace the record, got type %q", foo.Type)
	}

	order := make([]string, 0, set.Len())
	for _, param := range set.All() {
		order = append(order, param.Key.Name)
	}
	if diff := cmp.Diff([]string{"foo", "bar", "baz"}, order); diff != "" {
		t.Fatalf("declaration order mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclareParameterRejectsNearMissLocations(t *testing.T) {
	set := NewParameterSet()

	for _, in := range []string{"form_data", "formdata", "PATH", "Query", "cookie", "body "} {
		_, err := set.Declare(ParameterSpec{Name: "candidate", In: in, Type: "string"})
		if !errors.Is(err, ErrInvalidDeclaration) {
			t.Fatalf("location %q: expected ErrInvalidDeclaration, got %v", in, err)
		}
	}

	if _, err := set.Declare(ParameterSpec{Name: "upload", In: "formData", Type: "file"}); err != nil {
		t.Fatalf("canonical formData spelling must be accepted: %v", err)
	}
}

func TestDeclareParameterValidatesTypes(t *testing.T) {
	set := NewParameterSet()

	for _, accepted := range []string{"string", "number", "integer", "boolean", "array", "file"} {
		if _, err := set.Declare(ParameterSpec{Name: "p_" + accepted, In: "query", Type: accepted}); err != nil {
			t.Fatalf("type %q should be accepted: %v", accepted, err)
		}
	}

	for _, rejected := range []string{"float", "int", "File", "object", "42"} {
		_, err := set.Declare(ParameterSpec{Name: "candidate", In: "query", Type: rejected})
		if !errors.Is(err, ErrInvalidDeclaration) {
			t.Fatalf("type %q: expected ErrInvalidDeclaration, got %v", rejected, err)
		}
	}
}

func TestDeclareParameterBodyRequiresSchema(t *testing.T) {
	set := NewParameterSet()

	_, err := set.Declare(ParameterSpec{Name: "payload", In: "body"})
	if !errors.Is(err, ErrInvalidDeclaration) {
		t.Fatalf("body without schema: expected ErrInvalidDeclaration, got %v", err)
	}

	schema := map[string]any{"$ref": "#/definitions/Post"}
	param, err := set.Declare(ParameterSpec{Name: "payload", In: "body", Schema: schema})
	if err != nil {
		t.Fatalf("body with schema: %v", err)
	}
	if diff := cmp.Diff(schema, param.Schema); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclareParameterNonBodyRequiresType(t *testing.T) {
	set := NewParameterSet()

	for _, in := range []string{"path", "query", "header", "formData"} {
		_, err := set.Declare(ParameterSpec{Name: "candidate", In: in})
		if !errors.Is(err, ErrInvalidDeclaration) {
			t.Fatalf("location %q without type: expected ErrInvalidDeclaration, got %v", in, err)
		}
	}
}

func TestDeclareParameterStoresRefMarkers(t *testing.T) {
	set := NewParameterSet()

	param, err := set.Declare(ParameterSpec{Ref: "#/parameters/skipParam"})
	if err != nil {
		t.Fatalf("declare ref: %v", err)
	}
	if !param.IsRef() {
		t.Fatal("expected a reference marker")
	}
	if param.Ref != "#/parameters/skipParam" {
		t.Fatalf("ref must be stored verbatim, got %q", param.Ref)
	}
	if param.Key.Name != "skipParam" {
		t.Fatalf("expected name from terminal ref segment, got %q", param.Key.Name)
	}
	if param.Key.Location != "" {
		t.Fatalf("ref location must stay empty until resolution, got %q", param.Key.Location)
	}
}

func TestDeclareParameterRejectsMalformedRefs(t *testing.T) {
	set := NewParameterSet()

	for _, ref := range []string{"skipParam", "#/parameters/", "/"} {
		_, err := set.Declare(ParameterSpec{Ref: ref})
		if !errors.Is(err, ErrInvalidDeclaration) {
			t.Fatalf("ref %q: expected ErrInvalidDeclaration, got %v", ref, err)
		}
	}
}

func TestDeclareParameterRequiresLocationAndName(t *testing.T) {
	set := NewParameterSet()

	if _, err := set.Declare(ParameterSpec{Name: "orphan", Type: "string"}); !errors.Is(err, ErrInvalidDeclaration) {
		t.Fatalf("missing location: expected ErrInvalidDeclaration, got %v", err)
	}
	if _, err := set.Declare(ParameterSpec{In: "query", Type: "string"}); !errors.Is(err, ErrInvalidDeclaration) {
		t.Fatalf("missing name: expected ErrInvalidDeclaration, got %v", err)
	}
}
