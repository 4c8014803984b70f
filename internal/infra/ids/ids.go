// Package ids generates task identifiers.
package ids

import (
	"github.com/google/uuid"

	"github.com/runoshun/recur/internal/domain"
)

// Ensure UUIDGenerator implements domain.IDGenerator.
var _ domain.IDGenerator = UUIDGenerator{}

// UUIDGenerator issues random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
