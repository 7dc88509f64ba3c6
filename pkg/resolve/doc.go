// Package resolve turns declared metadata plus live values into concrete
// request inputs: ordered parameter values, a substituted URL path, and
// content-negotiation headers. Resolution is eager and all-or-nothing: an
// unresolvable reference or missing context value fails the whole call so test
// authors discover unset example values before any request is issued.
package resolve
