// Package spec holds the declaration-time metadata model: path items,
// operations, responses, and parameters, together with the annotator entry
// points that validate and normalize raw declarations. Everything here is
// static metadata; run-time value binding lives in pkg/resolve.
package spec
