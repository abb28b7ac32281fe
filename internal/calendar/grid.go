package calendar

import (
	"time"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// CellState classifies a single day cell in the rendered grid.
type CellState string

const (
	// CellPadding is an empty alignment cell before the 1st or after the last
	// day of a month.
	CellPadding CellState = "padding"
	// CellDisabled is a real date outside the selectable window.
	CellDisabled CellState = "disabled"
	// CellSelectable is a date inside the window that may be picked.
	CellSelectable CellState = "selectable"
	// CellSelected is the currently picked date. Selected wins over selectable.
	CellSelected CellState = "selected"
)

// Cell is one grid cell. Padding cells carry no date and Day 0.
type Cell struct {
	Date  types.DateString
	Day   int
	State CellState
}

// MonthBlock is one rendered month: a 7-wide Sunday-first grid whose cell
// count is always a multiple of 7.
type MonthBlock struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// Build lays out the calendar grid for a year. It is a pure function: equal
// inputs always produce equal cell sequences.
//
// The months rendered are those touched by the window. An empty window still
// renders the heuristic festival months for the year so the visitor sees the
// familiar season, with every real date disabled. In compact mode only one
// month is produced: the month holding the selection if that month is in the
// touched set, otherwise the first.
func Build(year int, window domain.ResolvedWindow, selected types.DateString, compact bool) []MonthBlock {
	span := window
	if span.IsEmpty() {
		span = HeuristicWindow(year)
	}

	months := monthsTouched(span)
	if compact && len(months) > 1 {
		months = []time.Month{compactMonth(months, selected)}
	}

	blocks := make([]MonthBlock, 0, len(months))
	for _, m := range months {
		blocks = append(blocks, buildMonth(year, m, window, selected))
	}
	return blocks
}

// buildMonth renders one full month with leading and trailing padding so the
// grid divides evenly into weeks.
func buildMonth(year int, month time.Month, window domain.ResolvedWindow, selected types.DateString) MonthBlock {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, 42)

	// Sunday-first alignment: leading padding equals the weekday index of the
	// first day of the month.
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{State: CellPadding})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := types.NewDateString(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))

		state := CellDisabled
		switch {
		case !selected.IsZero() && date == selected:
			state = CellSelected
		case window.Contains(date):
			state = CellSelectable
		}

		cells = append(cells, Cell{Date: date, Day: day, State: state})
	}

	for len(cells)%7 != 0 {
		cells = append(cells, Cell{State: CellPadding})
	}

	return MonthBlock{Year: year, Month: month, Cells: cells}
}

// monthsTouched returns the distinct calendar months covered by the span, in
// order.
func monthsTouched(span domain.ResolvedWindow) []time.Month {
	start, err := span.Start.Time()
	if err != nil {
		return nil
	}
	end, err := span.End.Time()
	if err != nil || end.Before(start) {
		return []time.Month{start.Month()}
	}

	months := make([]time.Month, 0, 2)
	for cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !cursor.After(end); cursor = cursor.AddDate(0, 1, 0) {
		months = append(months, cursor.Month())
	}
	return months
}

// compactMonth picks the single month to show in compact mode: the month of
// the selection when it belongs to the touched set, else the first month.
func compactMonth(months []time.Month, selected types.DateString) time.Month {
	if t, err := selected.Time(); err == nil {
		for _, m := range months {
			if m == t.Month() {
				return m
			}
		}
	}
	return months[0]
}
