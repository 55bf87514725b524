package session

import (
	"time"

	"github.com/MKhiriev/go-diary/models"
)

// Display helpers. Timestamps are stored as text in the display zone, so
// they are parsed back in that zone before comparing calendar days.

const (
	dayLabelLayout = "Mon, 02 Jan 2006"
	clockLayout    = "03:04 PM"
)

// DayGroup is a run of entries written on the same calendar day.
type DayGroup struct {
	Day     time.Time
	Label   string
	Entries []models.Entry
}

// ParseTimestamp reads an entry timestamp written with
// [models.TimestampLayout] in loc.
func ParseTimestamp(timestamp string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(models.TimestampLayout, timestamp, loc)
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FilterByDate keeps the entries written on day's calendar date in loc.
// Entries with unparsable timestamps are skipped. Order is preserved.
func FilterByDate(entries []models.Entry, day time.Time, loc *time.Location) []models.Entry {
	day = day.In(loc)
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		ts, err := ParseTimestamp(e.Timestamp, loc)
		if err != nil {
			continue
		}
		if sameDay(ts, day) {
			out = append(out, e)
		}
	}
	return out
}

// GroupByDay splits entries into runs of the same calendar day, keeping
// their order. Labels are relative to now.
func GroupByDay(entries []models.Entry, now time.Time, loc *time.Location) []DayGroup {
	var groups []DayGroup
	index := make(map[time.Time]int)

	for _, e := range entries {
		ts, err := ParseTimestamp(e.Timestamp, loc)
		if err != nil {
			continue
		}
		day := StartOfDay(ts, loc)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day, Label: DayLabel(day, now, loc)})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// DayLabel names day relative to now: "Today", "Yesterday", "Tomorrow" or
// a date such as "Sun, 05 Jan 2025".
func DayLabel(day, now time.Time, loc *time.Location) string {
	d := StartOfDay(day, loc)
	today := StartOfDay(now, loc)

	switch {
	case d.Equal(today):
		return "Today"
	case d.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	case d.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return d.Format(dayLabelLayout)
	}
}

// TimeOfDay returns the clock part of an entry timestamp, e.g. "03:45 PM".
// The raw timestamp is returned when it does not parse.
func TimeOfDay(timestamp string, loc *time.Location) string {
	ts, err := ParseTimestamp(timestamp, loc)
	if err != nil {
		return timestamp
	}
	return ts.Format(clockLayout)
}

// Preview shortens content to at most n runes, appending an ellipsis when
// cut. Line breaks are flattened to spaces.
func Preview(content string, n int) string {
	runes := []rune(content)
	for i, r := range runes {
		if r == '\n' || r == '\r' || r == '\t' {
			runes[i] = ' '
		}
	}
	if n <= 0 || len(runes) <= n {
		return string(runes)
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
