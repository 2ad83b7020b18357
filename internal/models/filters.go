package models

import (
	"github.com/google/uuid"
)

// PatternFilters contains filtering options for detected pattern queries
type PatternFilters struct {
	AccountID     *uuid.UUID
	Status        string
	PatternType   string
	MinConfidence int
	Offset        int
	Limit         int
}

// MappingFilters contains filtering options for transfer mapping and payee
// alias listings. TargetID is the account or payee the rows point at.
type MappingFilters struct {
	TargetID *uuid.UUID
	Search   string
	Offset   int
	Limit    int
}
