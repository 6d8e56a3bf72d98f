package idgen

import "github.com/google/uuid"

// NewFunc returns a new run identifier. It is implemented as a variable so
// tests can stub it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier as string.
func New() string { return NewFunc() }
