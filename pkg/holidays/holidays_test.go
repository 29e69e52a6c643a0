package holidays

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCalendar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCalendarJSON(t *testing.T) {
	path := writeCalendar(t, `{
		"year": 2026,
		"holidays": [
			{"date": "2026-01-01", "name": "Новый год"},
			{"date": "2026-07-06", "name": "Городской праздник"}
		]
	}`)

	entries, err := ParseCalendarJSON(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Новый год", entries[0].Name)
	assert.Equal(t, 2026, entries[0].Year)
	assert.Equal(t, 1, entries[0].Month)
	assert.Equal(t, 1, entries[0].Day)

	assert.Equal(t, 7, entries[1].Month)
	assert.Equal(t, 6, entries[1].Day)
}

func TestParseCalendarJSONBadDate(t *testing.T) {
	path := writeCalendar(t, `{"year": 2026, "holidays": [{"date": "06.07.2026", "name": "X"}]}`)

	_, err := ParseCalendarJSON(path)
	assert.Error(t, err)
}

func TestParseCalendarJSONWrongYear(t *testing.T) {
	path := writeCalendar(t, `{"year": 2026, "holidays": [{"date": "2025-01-01", "name": "X"}]}`)

	_, err := ParseCalendarJSON(path)
	assert.Error(t, err)
}

func TestParseCalendarJSONMissingFile(t *testing.T) {
	_, err := ParseCalendarJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestEntriesForMonth(t *testing.T) {
	path := writeCalendar(t, `{
		"year": 2026,
		"holidays": [
			{"date": "2026-01-01", "name": "Новый год"},
			{"date": "2026-07-06", "name": "Городской праздник"},
			{"date": "2026-07-25", "name": "Областной праздник"}
		]
	}`)

	entries, err := ParseCalendarJSON(path)
	require.NoError(t, err)

	july := EntriesForMonth(entries, 2026, 7)
	require.Len(t, july, 2)
	assert.Equal(t, 6, july[0].Day)
	assert.Equal(t, 25, july[1].Day)

	assert.Empty(t, EntriesForMonth(entries, 2026, 3))
}

func TestIsHoliday(t *testing.T) {
	entries := []Entry{
		{Date: time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC), Name: "Городской праздник"},
	}

	assert.True(t, IsHoliday(entries, time.Date(2026, time.July, 6, 15, 30, 0, 0, time.UTC)))
	assert.False(t, IsHoliday(entries, time.Date(2026, time.July, 7, 0, 0, 0, 0, time.UTC)))
}
