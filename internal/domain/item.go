package domain

import "time"

// Item represents a bookable physical resource (room or equipment)
type Item struct {
	ID        int64
	Name      string
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
