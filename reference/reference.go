// Package reference issues the unique identifiers MarzPay requires for
// idempotent request tracking.
package reference

import "github.com/google/uuid"

// Generator produces request references. It is an interface so tests can
// inject deterministic values instead of the process-wide random source.
type Generator interface {
	NewReference() string
}

// UUIDGenerator issues random UUIDv4 references.
type UUIDGenerator struct{}

// NewReference returns a fresh UUIDv4 string.
func (UUIDGenerator) NewReference() string {
	return uuid.NewString()
}
