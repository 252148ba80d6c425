package reminder

import (
	"sort"
	"time"
)

// Recurring occurrences always fire at 09:00 local to the range.
const fireHour = 9

// TruncateRange aligns a range to day boundaries: start to 00:00:00.000
// and end to 23:59:59.999 of their calendar days. Callers of Expand are
// responsible for passing a range through here first; Expand itself only
// validates ordering.
func TruncateRange(start, end time.Time) (time.Time, time.Time) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, end.Location())
	return s, e
}

// Expand derives the concrete occurrences of templates within
// [start, end] inclusive. Pure: same templates and range always yield
// the same ordered output. Returns ErrInvalidRange when start is after
// end.
//
// Monthly anchors on day 29-31 silently skip months without that day;
// there is no last-day-of-month fallback. Kept that way on purpose.
func Expand(start, end time.Time, templates []Reminder) ([]Occurrence, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	occurrences := make([]Occurrence, 0)

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	for _, tpl := range templates {
		switch tpl.Type {
		case TypeOnce:
			if tpl.DateTime == nil {
				continue
			}
			dt := *tpl.DateTime
			if !dt.Before(start) && !dt.After(end) {
				occurrences = append(occurrences, Occurrence{
					TemplateID: tpl.ID,
					DateTime:   dt,
					Message:    tpl.Message,
					Generated:  false,
				})
			}

		case TypeDaily:
			for d := dayStart; !d.After(end); d = d.AddDate(0, 0, 1) {
				occurrences = append(occurrences, fireAt(tpl, d))
			}

		case TypeWeekly:
			for d := dayStart; !d.After(end); d = d.AddDate(0, 0, 1) {
				if containsDay(tpl.Days, int(d.Weekday())) {
					occurrences = append(occurrences, fireAt(tpl, d))
				}
			}

		case TypeMonthly:
			if tpl.DateTime == nil {
				continue
			}
			anchor := tpl.DateTime.Day()
			for d := dayStart; !d.After(end); d = d.AddDate(0, 0, 1) {
				if d.Day() == anchor {
					occurrences = append(occurrences, fireAt(tpl, d))
				}
			}

		case TypeYearly:
			if tpl.DateTime == nil {
				continue
			}
			anchorDay, anchorMonth := tpl.DateTime.Day(), tpl.DateTime.Month()
			for d := dayStart; !d.After(end); d = d.AddDate(0, 0, 1) {
				if d.Day() == anchorDay && d.Month() == anchorMonth {
					occurrences = append(occurrences, fireAt(tpl, d))
				}
			}
		}
	}

	// Stable keeps insertion order among equal timestamps.
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].DateTime.Before(occurrences[j].DateTime)
	})

	return occurrences, nil
}

// UpcomingFrom filters occurrences to those at or after now. This is the
// only now-relative concern and it lives outside Expand so expansion
// stays deterministic. Used by the dashboard summary.
func UpcomingFrom(occurrences []Occurrence, now time.Time) []Occurrence {
	upcoming := make([]Occurrence, 0, len(occurrences))
	for _, occ := range occurrences {
		if !occ.DateTime.Before(now) {
			upcoming = append(upcoming, occ)
		}
	}
	return upcoming
}

func fireAt(tpl Reminder, day time.Time) Occurrence {
	return Occurrence{
		TemplateID: tpl.ID,
		DateTime:   time.Date(day.Year(), day.Month(), day.Day(), fireHour, 0, 0, 0, day.Location()),
		Message:    tpl.Message,
		Generated:  true,
	}
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
