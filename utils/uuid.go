package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used by the in-memory
// document store for document ids.
func GenerateID() string {
	return uuid.New().String()
}
