package domain

import "time"

// UserProfile carries per-user booking policy. WeeklyQuota overrides the
// service-wide default when set.
type UserProfile struct {
	UserID      int64
	WeeklyQuota *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResolveQuota returns the effective weekly quota for the profile,
// falling back to the given default when no override is set
func (p *UserProfile) ResolveQuota(defaultQuota int) int {
	if p != nil && p.WeeklyQuota != nil {
		return *p.WeeklyQuota
	}
	return defaultQuota
}
