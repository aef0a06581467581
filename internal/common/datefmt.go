package common

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// ParseISODates parses a list of YYYY-MM-DD strings, returning the dates
// sorted and deduplicated.
func ParseISODates(raw []string) ([]time.Time, error) {
	seen := make(map[string]bool, len(raw))
	dates := make([]time.Time, 0, len(raw))

	for _, s := range raw {
		s = strings.TrimSpace(s)
		if seen[s] {
			continue
		}
		d, err := time.Parse(isoDate, s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		seen[s] = true
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// JoinRawDates builds the canonical pipe-separated raw_dates column value.
func JoinRawDates(dates []time.Time) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = d.Format(isoDate)
	}
	return strings.Join(parts, "|")
}

// SplitRawDates is the inverse of JoinRawDates.
func SplitRawDates(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "|")
}

// FormatDates derives the human-readable date string from canonical dates.
// A single date renders as "May 1, 2024", a run of consecutive days as
// "May 1 to May 5, 2024", and anything else as a comma list. The display
// string is presentation only and is never parsed back.
func FormatDates(dates []time.Time) string {
	switch len(dates) {
	case 0:
		return ""
	case 1:
		return dates[0].Format("January 2, 2006")
	}

	if consecutive(dates) {
		first, last := dates[0], dates[len(dates)-1]
		if first.Year() == last.Year() {
			return fmt.Sprintf("%s to %s", first.Format("January 2"), last.Format("January 2, 2006"))
		}
		return fmt.Sprintf("%s to %s", first.Format("January 2, 2006"), last.Format("January 2, 2006"))
	}

	sameYear := true
	for _, d := range dates[1:] {
		if d.Year() != dates[0].Year() {
			sameYear = false
			break
		}
	}

	parts := make([]string, len(dates))
	for i, d := range dates {
		if sameYear && i < len(dates)-1 {
			parts[i] = d.Format("January 2")
		} else {
			parts[i] = d.Format("January 2, 2006")
		}
	}
	return strings.Join(parts, ", ")
}

func consecutive(dates []time.Time) bool {
	for i := 1; i < len(dates); i++ {
		if !dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}
