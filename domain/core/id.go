package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// BatchID identifies one sweep invocation; it seeds per-task RNG streams.
type BatchID ID

func (id BatchID) String() string { return ID(id).String() }

// ParseBatchID parses a string into a BatchID
func ParseBatchID(s string) (BatchID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("batch ID cannot be empty")
	}
	return BatchID(s), nil
}
