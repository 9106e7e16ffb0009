// Package timerule maps a reminder's recurrence rule to concrete trigger
// specs for the notification scheduler. It is pure: no clocks, no I/O.
package timerule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	errorvalues "github.com/Shahd3/iCare/internal/error_values"
	"github.com/Shahd3/iCare/pkg/entity"
)

// Trigger is one registration to perform against the scheduler. Either a
// repeating daily rule (Repeats true, Hour/Minute set) or a one-shot
// instant (At set).
type Trigger struct {
	Repeats bool
	Hour    int
	Minute  int
	At      time.Time
}

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)

// weekday names as the mobile app stored them
var weekdays = map[string]time.Weekday{
	"Sun": time.Sunday,
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
}

// ParseClock parses a 12-hour "H:MM AM/PM" string into 24-hour
// hour/minute. Case and spacing before the meridiem are flexible.
func ParseClock(s string) (hour, minute int, err error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, errorvalues.ErrInvalidTimeFormat
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if hh < 1 || hh > 12 || mm > 59 {
		return 0, 0, errorvalues.ErrInvalidTimeFormat
	}
	hh %= 12
	if strings.EqualFold(m[3], "PM") {
		hh += 12
	}
	return hh, mm, nil
}

// FormatClock renders a 24-hour hour/minute back into "H:MM AM/PM".
func FormatClock(hour, minute int) string {
	mer := "AM"
	h := hour
	if h >= 12 {
		mer = "PM"
		h -= 12
	}
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, mer)
}

// Derive produces the ordered trigger set for one reminder.
//
// Daily reminders become a single native repeating rule: the scheduler
// supports those reliably. Weekly reminders become bounded one-shot
// instants (horizon occurrences per weekday) because a "day-of-week,
// indefinitely" rule is not dependable on the target scheduler. The
// learned offset shifts the nominal time in both strategies, wrapping
// across day boundaries.
func Derive(rec entity.Recurrence, days []string, timeStr string, offsetMin int, now time.Time, horizon int) ([]Trigger, error) {
	hour, minute, err := ParseClock(timeStr)
	if err != nil {
		return nil, err
	}
	switch rec {
	case entity.RecurrenceWeekly:
		return deriveWeekly(days, hour, minute, offsetMin, now, horizon)
	default:
		h, m := ShiftClock(hour, minute, offsetMin)
		return []Trigger{{Repeats: true, Hour: h, Minute: m}}, nil
	}
}

func deriveWeekly(days []string, hour, minute, offsetMin int, now time.Time, horizon int) ([]Trigger, error) {
	if len(days) == 0 {
		return nil, errorvalues.ErrNoDaysSelected
	}
	if horizon < 1 {
		horizon = 1
	}
	triggers := make([]Trigger, 0, len(days)*horizon)
	for _, d := range days {
		wd, ok := weekdays[d]
		if !ok {
			return nil, errorvalues.ErrUnknownWeekday
		}
		first := nextOccurrence(now, wd, hour, minute).Add(time.Duration(offsetMin) * time.Minute)
		for i := 0; i < horizon; i++ {
			triggers = append(triggers, Trigger{At: first.AddDate(0, 0, 7*i)})
		}
	}
	return triggers, nil
}

// nextOccurrence finds the first instant strictly after now that falls on
// the given weekday at hour:minute. An occurrence at or before now rolls
// to the following week.
func nextOccurrence(now time.Time, wd time.Weekday, hour, minute int) time.Time {
	daysAhead := (int(wd) - int(now.Weekday()) + 7) % 7
	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()).
		AddDate(0, 0, daysAhead)
	if !cand.After(now) {
		cand = cand.AddDate(0, 0, 7)
	}
	return cand
}

// ShiftClock applies an offset in minutes to a wall-clock pair, wrapping
// with carry so 23:50+20 lands on 00:10.
func ShiftClock(hour, minute, offsetMin int) (int, int) {
	total := (hour*60 + minute + offsetMin) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return total / 60, total % 60
}
