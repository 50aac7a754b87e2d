package domain

import "github.com/google/uuid"

// NewID mints a globally unique opaque identifier for any entity instance.
// Collision probability is that of a random v4 UUID.
func NewID() string {
	return uuid.NewString()
}
