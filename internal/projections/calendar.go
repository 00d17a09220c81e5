package projections

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// CalendarDay is one day cell: the date and every visible task whose
// [start, end] range covers it.
type CalendarDay struct {
	Date  time.Time
	Tasks []domain.Task
}

// CalendarMonth is the calendar projection for the month containing the
// snapshot's selected date.
type CalendarMonth struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

// Calendar buckets the visible tasks by day across the selected month.
// A multi-day task appears on every day it covers.
func Calendar(s domain.Snapshot, f Filter) CalendarMonth {
	anchor := domain.DateOnly(s.SelectedDate)
	year, month := anchor.Year(), anchor.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	visible := VisibleTasks(s, f)
	out := CalendarMonth{Year: year, Month: month}
	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		cell := CalendarDay{Date: day}
		for _, t := range visible {
			if t.CoversDay(day) {
				cell.Tasks = append(cell.Tasks, t)
			}
		}
		out.Days = append(out.Days, cell)
	}
	return out
}
