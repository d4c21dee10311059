// Package calendar models the availability month grid: blocked-date
// membership, date matching, and month navigation.
package calendar

import "time"

// DateKey is the canonical "YYYY-MM-DD" form used for blocked-date sets.
const DateKey = "2006-01-02"

// SameDay reports whether two times fall on the same day/month/year.
func SameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

// IsBooked reports whether date is in the booked set.
func IsBooked(date time.Time, booked map[string]bool) bool {
	return booked[date.Format(DateKey)]
}

// IsSelected reports whether date matches the current selection.
func IsSelected(date time.Time, selected *time.Time) bool {
	if selected == nil {
		return false
	}
	return SameDay(date, *selected)
}

// NextMonth returns the first day of the month after current. No bounds:
// navigation may continue indefinitely forward.
func NextMonth(current time.Time) time.Time {
	return time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, current.Location())
}

// PrevMonth returns the first day of the month before current.
func PrevMonth(current time.Time) time.Time {
	return time.Date(current.Year(), current.Month()-1, 1, 0, 0, 0, 0, current.Location())
}

// DayCell is one day entry in a month grid projection.
type DayCell struct {
	Day      int    `json:"day"`
	Date     string `json:"date"` // "YYYY-MM-DD"
	Weekday  int    `json:"weekday"`
	Booked   bool   `json:"booked"`
	Selected bool   `json:"selected"`
}

// MonthGrid projects the days of the month containing ref against the
// booked set and current selection.
func MonthGrid(ref time.Time, booked map[string]bool, selected *time.Time) []DayCell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	next := NextMonth(first)
	days := int(next.Sub(first).Hours() / 24)

	cells := make([]DayCell, 0, days)
	for d := 0; d < days; d++ {
		day := first.AddDate(0, 0, d)
		cells = append(cells, DayCell{
			Day:      day.Day(),
			Date:     day.Format(DateKey),
			Weekday:  int(day.Weekday()),
			Booked:   IsBooked(day, booked),
			Selected: IsSelected(day, selected),
		})
	}
	return cells
}

// ToSet converts a list of "YYYY-MM-DD" strings into a membership set.
func ToSet(dates []string) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set
}
