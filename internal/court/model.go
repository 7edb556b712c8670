package court

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("court not found")
	ErrInvalidBox = errors.New("invalid box_id")
)

// Court represents one playable court inside a box.
type Court struct {
	ID        int64
	BoxID     int64
	Name      string
	CreatedAt time.Time
}
