// Package model contains the in-memory representation of a dining table:
// philosopher states, seat and fork ring arithmetic, and the invariant checks
// that every consistent snapshot of the table must pass.
//
// The runtime packages (`runtime/table`, `runtime/philosopher`) own the
// mutable data; this package only defines the vocabulary they share.
package model
