package openapi

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// fileSource identifies a swagger document on the local disk, the usual shape
// for test fixtures checked in next to the suite.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a swagger document at path. The
// path is cleaned so registry diagnostics print a stable location.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a document inside an fs.FS, which keeps loader tests and
// embedded fixtures free of real filesystem access.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a document inside the loader's
// configured fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// urlSource references a swagger document served over HTTP/HTTPS, e.g. a
// staging API publishing its own definition.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid: document sources are wired at configuration time,
// before any test runs, and a bad URL there is a setup mistake worth stopping
// on.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("openapi: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("openapi: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}
