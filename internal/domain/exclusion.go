package domain

import "time"

// ExclusionRule represents an administrator-defined recurring blackout:
// the item cannot be booked on the given weekday (0=Monday..4=Friday)
// for the given period and class slot. A nil period or class slot acts
// as a wildcard and blocks every value of that field.
type ExclusionRule struct {
	ID        int64
	ItemID    int64
	Weekday   int
	Period    *Period
	ClassSlot *ClassSlot
	CreatedAt time.Time
}

// Matches reports whether the rule blocks the given weekday/period/slot
func (r *ExclusionRule) Matches(weekday int, period Period, slot ClassSlot) bool {
	if r.Weekday != weekday {
		return false
	}
	if r.Period != nil && *r.Period != period {
		return false
	}
	if r.ClassSlot != nil && *r.ClassSlot != slot {
		return false
	}
	return true
}

// IsWildcard reports whether the rule blocks more than a single slot
func (r *ExclusionRule) IsWildcard() bool {
	return r.Period == nil || r.ClassSlot == nil
}
