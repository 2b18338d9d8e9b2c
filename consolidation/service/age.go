package service

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// AgeDeriver computes ages in completed years from day-first date strings.
type AgeDeriver struct {
	Now func() time.Time
}

// dateLayouts are tried in order before falling back to dateparse. Day-first
// wins; month-first only matches when the day-first reading is invalid, such
// as 3/15/90.
var dateLayouts = func() []string {
	var layouts []string

	for _, order := range []string{"2{s}1{s}", "1{s}2{s}"} {
		for _, year := range []string{"2006", "06"} {
			for _, sep := range []string{"/", "-", "."} {
				date := strings.ReplaceAll(order, "{s}", sep) + year
				layouts = append(layouts, date, date+" 15:04", date+" 15:04:05")
			}
		}
	}

	return layouts
}()

func NewAgeDeriver() *AgeDeriver {
	return &AgeDeriver{Now: time.Now}
}

// Derive returns the age for birthDate as of Now. ok is false when the date
// cannot be parsed or lies in the future.
func (a *AgeDeriver) Derive(birthDate string) (age int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			age, ok = 0, false
		}
	}()

	birthDate = strings.TrimSpace(birthDate)
	if birthDate == "" {
		return 0, false
	}

	birth, err := parseBirthDate(birthDate)
	if err != nil {
		return 0, false
	}

	now := a.Now()

	age = now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	if age < 0 {
		return 0, false
	}

	return age, true
}

func parseBirthDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(false))
}
