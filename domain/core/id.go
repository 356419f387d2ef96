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

// SessionKey identifies one interactive user session. Derived tables are
// never shared across session keys.
type SessionKey ID

func (k SessionKey) String() string { return ID(k).String() }

// NewSessionKey creates a fresh session key
func NewSessionKey() SessionKey {
	return SessionKey(NewID())
}

// ParseSessionKey parses a string into SessionKey
func ParseSessionKey(s string) (SessionKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("session key cannot be empty")
	}
	return SessionKey(s), nil
}
