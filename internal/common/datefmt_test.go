package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODatesSortsAndDedupes(t *testing.T) {
	dates, err := ParseISODates([]string{"2026-05-03", "2026-05-01", "2026-05-03", "2026-05-02"})
	require.NoError(t, err)
	require.Len(t, dates, 3)

	assert.Equal(t, "2026-05-01|2026-05-02|2026-05-03", JoinRawDates(dates))
}

func TestParseISODatesRejectsBadInput(t *testing.T) {
	_, err := ParseISODates([]string{"2026-05-01", "May 2nd"})
	assert.Error(t, err)

	_, err = ParseISODates([]string{"2026-13-01"})
	assert.Error(t, err)
}

func TestSplitRawDatesRoundTrip(t *testing.T) {
	dates, err := ParseISODates([]string{"2026-05-01", "2026-05-02"})
	require.NoError(t, err)

	raw := JoinRawDates(dates)
	assert.Equal(t, []string{"2026-05-01", "2026-05-02"}, SplitRawDates(raw))
	assert.Nil(t, SplitRawDates(""))
}

func TestFormatDatesSingle(t *testing.T) {
	d := []time.Time{time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "May 1, 2026", FormatDates(d))
}

func TestFormatDatesConsecutiveRange(t *testing.T) {
	dates, err := ParseISODates([]string{"2026-05-01", "2026-05-02", "2026-05-03"})
	require.NoError(t, err)

	assert.Equal(t, "May 1 to May 3, 2026", FormatDates(dates))
}

func TestFormatDatesNonConsecutiveList(t *testing.T) {
	dates, err := ParseISODates([]string{"2026-05-01", "2026-05-03"})
	require.NoError(t, err)

	assert.Equal(t, "May 1, May 3, 2026", FormatDates(dates))
}

func TestFormatDatesEmpty(t *testing.T) {
	assert.Equal(t, "", FormatDates(nil))
}
