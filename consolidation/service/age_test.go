package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func TestAgeDeriverDerive(t *testing.T) {
	tests := []struct {
		name      string
		now       func() time.Time
		birthDate string
		wantAge   int
		wantOK    bool
	}{
		{"before birthday", fixedClock(2024, time.March, 10), "15/03/1990", 33, true},
		{"after birthday", fixedClock(2024, time.March, 20), "15/03/1990", 34, true},
		{"on birthday", fixedClock(2024, time.March, 15), "15/03/1990", 34, true},
		{"day first", fixedClock(2024, time.March, 5), "05/03/1990", 34, true},
		{"day first before birthday", fixedClock(2024, time.March, 4), "05/03/1990", 33, true},
		{"dashes", fixedClock(2024, time.March, 10), "15-03-1990", 33, true},
		{"dashes day first", fixedClock(2024, time.March, 10), "05-03-1990", 34, true},
		{"dots", fixedClock(2024, time.March, 10), "15.03.1990", 33, true},
		{"dots day first", fixedClock(2024, time.March, 10), "05.03.1990", 34, true},
		{"single digits", fixedClock(2024, time.March, 10), "5/3/1990", 34, true},
		{"two digit year", fixedClock(2024, time.March, 10), "05/03/90", 34, true},
		{"month first fallback", fixedClock(2024, time.March, 10), "3/15/90", 33, true},
		{"iso", fixedClock(2024, time.March, 10), "1990-03-15", 33, true},
		{"with time", fixedClock(2024, time.March, 5), "05/03/1990 10:30", 34, true},
		{"surrounding spaces", fixedClock(2024, time.March, 20), "  15/03/1990 ", 34, true},
		{"not a date", fixedClock(2024, time.March, 10), "not a date", 0, false},
		{"empty", fixedClock(2024, time.March, 10), "", 0, false},
		{"future", fixedClock(2024, time.March, 10), "01/01/2030", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &AgeDeriver{Now: tt.now}

			age, ok := a.Derive(tt.birthDate)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantAge, age)
		})
	}
}
