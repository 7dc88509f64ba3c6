// Package valuesource ships adapters for the resolver's ValueSource contract:
// plain maps, lookup functions, reflection over host context structs, chained
// fallbacks, and expression-derived values.
package valuesource
