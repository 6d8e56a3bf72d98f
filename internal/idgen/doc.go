// Package idgen wraps the UUID generator used to tag every simulation run so
// that it can be stubbed in tests.  Callers should treat identifiers as
// opaque strings.
package idgen
