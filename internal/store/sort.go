package store

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"eventcrew/rollcall/internal/models/entities"
)

// StartMinutes normalizes a time-of-day label ("9:00 AM", "14:30", "7 PM")
// to minutes since midnight. Labels drawn from free text don't always parse;
// ok=false tells the caller to fall back to lexicographic ordering.
func StartMinutes(label string) (int, bool) {
	s := strings.TrimSpace(strings.ToUpper(label))
	if s == "" {
		return 0, false
	}

	meridiem := ""
	for _, suffix := range []string{"AM", "PM", "A.M.", "P.M."} {
		if strings.HasSuffix(s, suffix) {
			meridiem = string(suffix[0])
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	hourPart, minutePart := s, "0"
	if i := strings.Index(s, ":"); i >= 0 {
		hourPart, minutePart = s[:i], s[i+1:]
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minutePart))
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	// a meridiem implies 12-hour clock; "13 AM" is malformed, not 13:00
	if meridiem != "" && hour > 12 {
		return 0, false
	}

	switch meridiem {
	case "A":
		if hour == 12 {
			hour = 0
		}
	case "P":
		if hour != 12 {
			hour += 12
		}
	}

	return hour*60 + minute, true
}

// SortShifts orders shifts by shift date, then by normalized start time.
// Comparing "9:00 AM" against "10:00 AM" as raw strings sorts them the wrong
// way round, which is why the minutes normalization exists.
func SortShifts(shifts []entities.Shift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		di := shifts[i].ShiftDate.Format("2006-01-02")
		dj := shifts[j].ShiftDate.Format("2006-01-02")
		if di != dj {
			return di < dj
		}

		mi, oki := StartMinutes(shifts[i].StartTime)
		mj, okj := StartMinutes(shifts[j].StartTime)
		if oki && okj {
			return mi < mj
		}
		return shifts[i].StartTime < shifts[j].StartTime
	})
}

// SameDay compares two timestamps at day granularity, ignoring
// time-of-day components on the stored value.
func SameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
