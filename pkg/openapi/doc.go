// Package openapi exposes the document store contracts: sources, parsed
// swagger 2.0 documents, and the process-wide registry both the annotation
// and resolution layers read from. Loader implementations live under
// internal/openapi to keep parsing details hidden from consumers.
package openapi
