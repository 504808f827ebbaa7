package domain

import (
	"fmt"
	"time"
)

// Period represents the half-day designation of a class slot
type Period string

const (
	PeriodMatutino   Period = "matutino"
	PeriodVespertino Period = "vespertino"
)

// ParsePeriod validates and converts a raw string into a Period
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodMatutino, PeriodVespertino:
		return Period(s), nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// ClassSlot represents one of the five ordered class slots within a period
type ClassSlot string

const (
	ClassSlot1 ClassSlot = "1 aula"
	ClassSlot2 ClassSlot = "2 aula"
	ClassSlot3 ClassSlot = "3 aula"
	ClassSlot4 ClassSlot = "4 aula"
	ClassSlot5 ClassSlot = "5 aula"
)

// ClassSlots lists all class slots in schedule order
var ClassSlots = []ClassSlot{ClassSlot1, ClassSlot2, ClassSlot3, ClassSlot4, ClassSlot5}

// ParseClassSlot validates and converts a raw string into a ClassSlot
func ParseClassSlot(s string) (ClassSlot, error) {
	for _, slot := range ClassSlots {
		if ClassSlot(s) == slot {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown class slot %q", s)
}

// Rental represents a confirmed booking of an item for a specific
// date, period and class slot by a client
type Rental struct {
	ID        int64
	ItemID    int64
	Date      time.Time // calendar date, time part is zero
	Period    Period
	ClassSlot ClassSlot
	Room      string
	ClientID  int64

	// Denormalized for display in listings and conflict messages
	ItemName       string
	ClientUsername string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotKey identifies the slot a rental occupies. No two rentals may
// share the same key; the admission chain re-checks this on every
// create and edit because the uniqueness is a business rule, not only
// a storage constraint.
type SlotKey struct {
	ItemID    int64
	Date      time.Time
	Period    Period
	ClassSlot ClassSlot
}

// Key returns the slot occupied by the rental
func (r *Rental) Key() SlotKey {
	return SlotKey{ItemID: r.ItemID, Date: r.Date, Period: r.Period, ClassSlot: r.ClassSlot}
}

// RentalsFilter filters schedule listings
type RentalsFilter struct {
	From     *time.Time // inclusive, nil = no lower bound
	To       *time.Time // inclusive, nil = no upper bound
	ItemID   *int64
	ClientID *int64
}
