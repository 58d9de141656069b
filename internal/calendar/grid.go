// Package calendar computes month-view grids over aggregated availability.
// It is pure: no I/O, no clock access beyond the caller-supplied now.
package calendar

import (
	"fmt"
	"time"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// Columns is the number of weekday columns. Weeks run Sunday-first.
const Columns = 7

// Day is one calendar day cell of a month view.
type Day struct {
	Date    time.Time `json:"date"`
	IsPast  bool      `json:"is_past"`
	IsToday bool      `json:"is_today"`
}

// Key returns the day's ISO date string, matching month-index keys.
func (d Day) Key() string {
	return d.Date.Format(model.DateKeyLayout)
}

// Grid is a month's day cells plus the leading blanks that align the first
// day to its weekday column. The grid is unpadded: it holds exactly
// LeadingBlanks + len(Days) cells, with no trailing blanks.
type Grid struct {
	Year          int   `json:"year"`
	Month         int   `json:"month"`
	LeadingBlanks int   `json:"leading_blanks"`
	Days          []Day `json:"days"`
}

// MonthGrid enumerates every day of the given month. Past/today flags are
// computed against the calendar day of now in now's location.
func MonthGrid(year int, month time.Month, now time.Time) (Grid, error) {
	if month < time.January || month > time.December {
		return Grid{}, fmt.Errorf("invalid month: %d", month)
	}
	if year < 1 {
		return Grid{}, fmt.Errorf("invalid year: %d", year)
	}

	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	grid := Grid{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: int(first.Weekday()),
	}

	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		grid.Days = append(grid.Days, Day{
			Date:    day,
			IsPast:  day.Before(today),
			IsToday: day.Equal(today),
		})
	}

	return grid, nil
}

// FirstDay returns the first day of the grid's month.
func (g Grid) FirstDay() time.Time {
	return g.Days[0].Date
}

// LastDay returns the last day of the grid's month.
func (g Grid) LastDay() time.Time {
	return g.Days[len(g.Days)-1].Date
}
