package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

func TestExclusionRuleMatches(t *testing.T) {
	tests := []struct {
		name    string
		rule    ExclusionRule
		weekday int
		period  Period
		slot    ClassSlot
		want    bool
	}{
		{
			name:    "exact rule matches exact slot",
			rule:    ExclusionRule{Weekday: 0, Period: ptr.Ptr(PeriodMatutino), ClassSlot: ptr.Ptr(ClassSlot1)},
			weekday: 0, period: PeriodMatutino, slot: ClassSlot1,
			want: true,
		},
		{
			name:    "different weekday never matches",
			rule:    ExclusionRule{Weekday: 0, Period: ptr.Ptr(PeriodMatutino), ClassSlot: ptr.Ptr(ClassSlot1)},
			weekday: 1, period: PeriodMatutino, slot: ClassSlot1,
			want: false,
		},
		{
			name:    "nil period blocks both periods",
			rule:    ExclusionRule{Weekday: 2, Period: nil, ClassSlot: ptr.Ptr(ClassSlot3)},
			weekday: 2, period: PeriodVespertino, slot: ClassSlot3,
			want: true,
		},
		{
			name:    "nil class slot blocks every slot",
			rule:    ExclusionRule{Weekday: 2, Period: ptr.Ptr(PeriodMatutino), ClassSlot: nil},
			weekday: 2, period: PeriodMatutino, slot: ClassSlot5,
			want: true,
		},
		{
			name:    "fully wildcard rule blocks the whole day",
			rule:    ExclusionRule{Weekday: 4},
			weekday: 4, period: PeriodVespertino, slot: ClassSlot2,
			want: true,
		},
		{
			name:    "set period still filters",
			rule:    ExclusionRule{Weekday: 2, Period: ptr.Ptr(PeriodMatutino), ClassSlot: nil},
			weekday: 2, period: PeriodVespertino, slot: ClassSlot1,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Matches(tt.weekday, tt.period, tt.slot))
		})
	}
}

func TestExclusionRuleIsWildcard(t *testing.T) {
	assert.True(t, (&ExclusionRule{Weekday: 0}).IsWildcard())
	assert.True(t, (&ExclusionRule{Weekday: 0, Period: ptr.Ptr(PeriodMatutino)}).IsWildcard())
	assert.False(t, (&ExclusionRule{
		Weekday: 0, Period: ptr.Ptr(PeriodMatutino), ClassSlot: ptr.Ptr(ClassSlot1),
	}).IsWildcard())
}

func TestUserProfileResolveQuota(t *testing.T) {
	var nilProfile *UserProfile
	assert.Equal(t, 8, nilProfile.ResolveQuota(8))

	assert.Equal(t, 8, (&UserProfile{UserID: 1}).ResolveQuota(8))

	assert.Equal(t, 3, (&UserProfile{UserID: 1, WeeklyQuota: ptr.Ptr(3)}).ResolveQuota(8))
}

func TestCapabilitiesFor(t *testing.T) {
	regular := CapabilitiesFor(false)
	assert.False(t, regular.CanAssignArbitraryClient)
	assert.False(t, regular.BypassDateAndQuotaChecks)

	super := CapabilitiesFor(true)
	assert.True(t, super.CanAssignArbitraryClient)
	assert.True(t, super.BypassDateAndQuotaChecks)
}
