package venue

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("box not found")
)

// Box represents a bookable venue with one or more courts.
type Box struct {
	ID          int64
	Title       string
	Address     string
	Description string
	// Coordinates arrive from the feed as strings and are parsed
	// defensively; a malformed value becomes 0 rather than an error.
	Latitude  float64
	Longitude float64
	Opening   bool
	CreatedAt time.Time
}

// Filter defines parameters for listing boxes.
type Filter struct {
	Keyword  string // Search in Title or Address
	Page     int
	PageSize int
}
