package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	apispec "github.com/goliatone/go-apispec"
	pkgopenapi "github.com/goliatone/go-apispec/pkg/openapi"
	"github.com/goliatone/go-apispec/pkg/resolve"
	"github.com/goliatone/go-apispec/pkg/spec"
	"github.com/goliatone/go-apispec/pkg/valuesource"
)

func main() {
	source := flag.String("document", "swagger.json", "swagger document path or URL")
	template := flag.String("path", "", "path template to resolve, e.g. /sites/{site_id}")
	method := flag.String("method", "GET", "HTTP method")
	flag.Parse()

	if *template == "" {
		log.Fatal("missing -path template")
	}

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid document source: %q", *source)
	}

	docs := pkgopenapi.NewRegistry()
	if _, err := apispec.LoadInto(ctx, docs, "default", src, pkgopenapi.WithHTTPFallback(10*time.Second)); err != nil {
		log.Fatalf("load document: %v", err)
	}
	docs.Freeze()

	item, err := spec.DeclarePath(docs, *template)
	if err != nil {
		log.Fatalf("declare path: %v", err)
	}
	op := item.DeclareOperation(*method)

	names, err := resolve.Placeholders(*template)
	if err != nil {
		log.Fatalf("scan template: %v", err)
	}

	values := valuesource.Map{}
	for _, name := range names {
		var answer string
		prompt := &survey.Input{Message: fmt.Sprintf("value for {%s}:", name)}
		if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)); err != nil {
			log.Fatalf("prompt: %v", err)
		}
		values[name] = answer
	}

	resolver := resolve.New(docs)

	url, err := resolver.Path(item, values)
	if err != nil {
		log.Fatalf("resolve path: %v", err)
	}
	headers, err := resolver.Headers(item, op)
	if err != nil {
		log.Fatalf("resolve headers: %v", err)
	}

	fmt.Printf("%s %s\n", strings.ToUpper(op.Method()), url)
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s: %s\n", key, headers[key])
	}
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
