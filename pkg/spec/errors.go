package spec

import "errors"

// ErrInvalidDeclaration marks every declaration-time validation failure: bad
// path templates, unknown parameter locations or types, missing body schemas,
// malformed response codes. Declaration errors surface immediately to the
// declaring caller and are never suppressed.
var ErrInvalidDeclaration = errors.New("spec: invalid declaration")
