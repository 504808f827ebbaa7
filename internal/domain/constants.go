package domain

// Default policy values
const (
	// DefaultWeeklyQuota maximum rentals a non-privileged user may hold
	// within one ISO week, unless a profile override is set
	DefaultWeeklyQuota = 8

	// DefaultTimezone civil timezone all day-boundary decisions use
	DefaultTimezone = "America/Sao_Paulo"
)

// Exclusion rules cover school days only, Monday (0) through Friday (4)
const (
	MinExclusionWeekday = 0
	MaxExclusionWeekday = 4
)

// Business validation constants
const (
	MaxRoomLength = 100
	MaxItemName   = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
