package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rag3karn/HOF-Scheduler/internal/models"
)

// Separator divides the header and every venue block.
const Separator = "━━━━━━━━━━━━━━━━━━"

var ErrEmptySchedule = errors.New("no schedule rows to announce")

// Format renders the weekly announcement for a validated schedule.
func Format(t models.ScheduleTable) (string, error) {
	if len(t) == 0 {
		return "", ErrEmptySchedule
	}

	city := t.City()
	lines := make([]string, 0, 4+3*len(t))
	lines = append(lines,
		fmt.Sprintf("*🚨⚽ HUMANS OF FOOTBALL – %s FULL WEEK ANNOUNCEMENT ⚽🚨*", strings.ToUpper(city)),
		fmt.Sprintf("%s, are you ready? 🔥", city),
		"This week we're going LIVE again across multiple turfs 💛",
		Separator,
	)

	for _, row := range t {
		half := row.HalfCapacity()
		lines = append(lines,
			fmt.Sprintf("📍 *NAME* – %s", row.VenueName),
			fmt.Sprintf("🗓 %s %s | %s–%s | %dv%d",
				Ordinal(row.StartTime.Day()), row.StartTime.Weekday(),
				FormatTime(row.StartTime), FormatTime(row.EndTime),
				half, half),
			Separator,
		)
	}

	return strings.Join(lines, "\n"), nil
}

// OrdinalSuffix returns st, nd, rd or th for a day number.
func OrdinalSuffix(day int) string {
	if n := day % 100; n >= 10 && n <= 20 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Ordinal renders 1 as "1st", 12 as "12th" and so on.
func Ordinal(day int) string {
	return fmt.Sprintf("%d%s", day, OrdinalSuffix(day))
}

// FormatTime renders the clock time on a 12-hour dial, dropping ":00".
// 19:00 is "7 PM", 19:30 is "7:30 PM", midnight is "12 AM".
func FormatTime(t time.Time) string {
	hour, period := t.Hour(), "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		hour -= 12
		period = "PM"
	}
	if t.Minute() == 0 {
		return fmt.Sprintf("%d %s", hour, period)
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), period)
}
