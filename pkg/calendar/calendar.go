package calendar

import (
	"fmt"
	"strings"
	"time"

	"workforce-bot/internal/models"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// MonthKey formats a year and month as the YYYY-MM key used throughout
// storage and aggregation.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// DateKey formats a full calendar date as YYYY-MM-DD.
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (year, month int, err error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t.Year(), int(t.Month()), nil
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// MonthOfDate returns the YYYY-MM prefix of a YYYY-MM-DD key.
func MonthOfDate(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

func DaysInMonth(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}

// WeekOfMonth returns the 1-based week-of-month bucket for a date:
// ceil((day + weekday-of-first)/7) with Sunday counted as 0.
func WeekOfMonth(date time.Time) int {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return (date.Day() + int(first.Weekday()) + 6) / 7
}

// statusGlyph picks the emoji shown for a marker in the text grid.
func statusGlyph(m models.CalendarMarker) string {
	switch m.Status {
	case models.MarkerRequestPending:
		return "🟡"
	case models.MarkerRequestApproved:
		return "🟢"
	case models.MarkerRequestRejected:
		return "🔴"
	case models.MarkerScheduled:
		return "🔵"
	}
	if m.Disabled {
		return "✖️"
	}
	return ""
}

// RenderMonth builds a fixed-width text calendar for the bot, one row per
// week starting on Monday, with marker glyphs appended to marked days.
func RenderMonth(year, month int, markers map[string]models.CalendarMarker) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %d\n", time.Month(month).String(), year))
	b.WriteString("Mo Tu We Th Fr Sa Su\n")

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Monday-first offset: Monday=0 ... Sunday=6.
	offset := (int(first.Weekday()) + 6) % 7
	for i := 0; i < offset; i++ {
		b.WriteString("   ")
	}

	days := DaysInMonth(year, month)
	col := offset
	for d := 1; d <= days; d++ {
		key := DateKey(year, month, d)
		cell := fmt.Sprintf("%2d", d)
		if m, ok := markers[key]; ok {
			if g := statusGlyph(m); g != "" {
				cell = fmt.Sprintf("%2d%s", d, g)
			}
		}
		b.WriteString(cell)
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n🔵 scheduled  🟡 pending  🟢 approved  🔴 rejected\n")
	return b.String()
}
