package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input   string
		want    Period
		wantErr bool
	}{
		{input: "matutino", want: PeriodMatutino},
		{input: "vespertino", want: PeriodVespertino},
		{input: "noturno", wantErr: true},
		{input: "Matutino", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClassSlot(t *testing.T) {
	for _, slot := range ClassSlots {
		got, err := ParseClassSlot(string(slot))
		assert.NoError(t, err)
		assert.Equal(t, slot, got)
	}

	for _, bad := range []string{"", "6 aula", "0 aula", "1aula", "aula 1"} {
		_, err := ParseClassSlot(bad)
		assert.Error(t, err, bad)
	}
}

func TestRentalKey(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	a := &Rental{ID: 1, ItemID: 7, Date: date, Period: PeriodMatutino, ClassSlot: ClassSlot2, ClientID: 10}
	b := &Rental{ID: 2, ItemID: 7, Date: date, Period: PeriodMatutino, ClassSlot: ClassSlot2, ClientID: 99}

	// Ключ слота не зависит от клиента и ID записи
	assert.Equal(t, a.Key(), b.Key())

	c := &Rental{ItemID: 7, Date: date, Period: PeriodVespertino, ClassSlot: ClassSlot2}
	assert.NotEqual(t, a.Key(), c.Key())
}
