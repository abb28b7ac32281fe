// Package calendar implements the date-range-aware availability engine: it
// resolves the selectable window for a festival year, lays the window out as a
// month-by-month grid, and drives the per-widget selection state.
package calendar

import (
	"time"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// Resolve computes the selectable date window for year.
//
// Precedence:
//  1. an explicit admin-defined range for the year is returned verbatim;
//  2. inside [minYear, maxYear] the heuristic window is synthesized;
//  3. outside the bounds the window is empty (no selectable dates).
//
// Resolve never fails; it always returns a window, possibly empty.
func Resolve(year int, explicit map[int]domain.DateRange, minYear, maxYear int) domain.ResolvedWindow {
	if r, ok := explicit[year]; ok {
		return domain.ResolvedWindow{Year: year, Start: r.Start, End: r.End}
	}

	if year >= minYear && year <= maxYear {
		return HeuristicWindow(year)
	}

	return domain.ResolvedWindow{Year: year}
}

// HeuristicWindow synthesizes the festival window for a year with no explicit
// range: start is the first Saturday on or after September 15, the run lasts
// domain.HeuristicRunDays days.
func HeuristicWindow(year int) domain.ResolvedWindow {
	start := time.Date(year, time.Month(domain.HeuristicStartMonth), domain.HeuristicStartDay, 0, 0, 0, 0, time.UTC)
	for start.Weekday() != time.Saturday {
		start = start.AddDate(0, 0, 1)
	}
	end := start.AddDate(0, 0, domain.HeuristicRunDays)

	return domain.ResolvedWindow{
		Year:  year,
		Start: types.NewDateString(start),
		End:   types.NewDateString(end),
	}
}

// RangesByYear indexes a range list by year. Later entries for the same year
// overwrite earlier ones (last write wins, matching the admin store policy).
func RangesByYear(ranges []domain.DateRange) map[int]domain.DateRange {
	byYear := make(map[int]domain.DateRange, len(ranges))
	for _, r := range ranges {
		byYear[r.Year] = r
	}
	return byYear
}
