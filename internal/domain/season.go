package domain

import "github.com/everliz/VIP-BookingService/pkg/types"

// DateRange is an admin-defined event window for one festival year.
// Invariant: Start <= End, and at most one range exists per year (last write
// wins when duplicates are submitted).
type DateRange struct {
	Year  int
	Start types.DateString
	End   types.DateString
}

// ResolvedWindow is the selectable date window computed for a year.
// A window may be empty (no selectable dates) when the year lies outside the
// configured bounds. Computed on demand, never persisted.
type ResolvedWindow struct {
	Year  int
	Start types.DateString
	End   types.DateString
}

// IsEmpty returns true when the window holds no selectable dates.
func (w ResolvedWindow) IsEmpty() bool {
	return w.Start.IsZero() || w.End.IsZero()
}

// Contains reports whether d falls inside the window, bounds inclusive.
func (w ResolvedWindow) Contains(d types.DateString) bool {
	if w.IsEmpty() || d.IsZero() {
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End)
}
