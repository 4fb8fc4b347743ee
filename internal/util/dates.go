package util

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// AgeOn derives a calendar age from a YYYY-MM-DD birth date: year
// difference, minus one when the birthday has not yet occurred in the
// reference year. Returns an error for unparseable input and clamps
// future birth dates to zero.
func AgeOn(dob string, today time.Time) (int, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(dob))
	if err != nil {
		return 0, errors.New("invalid date of birth (use YYYY-MM-DD)")
	}

	age := today.Year() - d.Year()
	if today.Month() < d.Month() || (today.Month() == d.Month() && today.Day() < d.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age, nil
}

func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	parseAny := func(s string) (t time.Time, ok bool, isDateOnly bool, err error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, false, false, nil
		}

		// RFC3339 timestamp
		if tt, e := time.Parse(time.RFC3339, s); e == nil {
			return tt, true, false, nil
		}

		// YYYY-MM-DD
		if tt, e := time.Parse(dateLayout, s); e == nil {
			return tt, true, true, nil // date-only => start of day
		}

		return time.Time{}, false, false, errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")
	}

	var (
		rawStart    time.Time
		rawEnd      time.Time
		startOk     bool
		endOk       bool
		endDateOnly bool
	)

	if startStr != nil {
		t, ok, _, e := parseAny(*startStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		if ok {
			rawStart = t
			startOk = true
		}
	}

	if endStr != nil {
		t, ok, isDateOnly, e := parseAny(*endStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		if ok {
			rawEnd = t
			endOk = true
			endDateOnly = isDateOnly
		}
	}

	if startOk && endOk && rawEnd.Before(rawStart) {
		rawStart, rawEnd = rawEnd, rawStart
	}

	if startOk {
		start = rawStart
		hasStart = true
	}

	if endOk {
		if endDateOnly {
			endExclusive = rawEnd.AddDate(0, 0, 1) // include the whole end date
		} else {
			endExclusive = rawEnd
		}
		hasEnd = true
	}

	return start, hasStart, endExclusive, hasEnd, nil
}
