package utils

import (
	"fmt"
	"time"
)

const (
	weekKeyLayout = "2006-01-02"
	labelLayout   = "02/01/2006"
	// stamp used in stored image names, microsecond resolution
	fileStampLayout = "20060102150405.000000"
)

// WeekAnchor returns the Monday of the week containing t, at midnight in
// t's location. Sunday belongs to the week that started six days earlier.
func WeekAnchor(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekKey formats a Monday as the grouping key of its menu week.
func WeekKey(monday time.Time) string {
	return monday.Format(weekKeyLayout)
}

// WeekSpanLabel describes the Monday to Friday span starting at monday.
func WeekSpanLabel(monday time.Time) string {
	friday := monday.AddDate(0, 0, 4)
	return fmt.Sprintf("Week of %s to %s", monday.Format(labelLayout), friday.Format(labelLayout))
}

// ParseWeekKey accepts any yyyy-mm-dd date and returns the Monday anchoring it.
func ParseWeekKey(s string) (time.Time, error) {
	t, err := time.Parse(weekKeyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWeek, s)
	}
	return WeekAnchor(t), nil
}

// FileStamp renders t in UTC down to the microsecond without separators,
// e.g. 20240311093015123456.
func FileStamp(t time.Time) string {
	s := t.UTC().Format(fileStampLayout)
	return s[:14] + s[15:]
}

func NowUTC() time.Time { return time.Now().UTC() }
