package core

import (
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

// Domain-specific ID types
type (
	ReportID  ID
	DatasetID ID
)

func (id ReportID) String() string  { return ID(id).String() }
func (id DatasetID) String() string { return ID(id).String() }
