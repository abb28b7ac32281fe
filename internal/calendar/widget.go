package calendar

import (
	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// Direction is a year navigation direction.
type Direction int

const (
	Prev Direction = iota
	Next
)

// Config enumerates every recognized widget option with its default.
// Unknown options cannot exist: the struct is the whole vocabulary.
type Config struct {
	// StartDate/EndDate, when both set and valid, define the explicit window
	// for their year and pick the initial displayed year.
	StartDate types.DateString
	EndDate   types.DateString

	// Year bounds for navigation. Zero values fall back to the domain
	// defaults.
	MinYear int
	MaxYear int

	// Compact renders a single month instead of the whole season.
	Compact bool

	// SelectedDate is the initial selection. Missing, unparsable or
	// out-of-window values default to the window start.
	SelectedDate types.DateString

	// DateRanges are the admin-defined per-year windows. Later duplicates for
	// a year win.
	DateRanges []domain.DateRange

	// OnChange fires whenever the selection changes, with the ISO YYYY-MM-DD
	// value that was synchronized to the bound input.
	OnChange func(types.DateString)
}

// Widget drives one mounted calendar instance. Each rendered widget owns its
// own Widget; state lives only for the widget's lifetime and is mutated only
// by Navigate and Select.
type Widget struct {
	ranges      map[int]domain.DateRange
	minYear     int
	maxYear     int
	compact     bool
	currentYear int
	selected    types.DateString
	inputValue  string
	onChange    func(types.DateString)
}

// New constructs a widget from an explicit configuration.
func New(cfg Config) *Widget {
	w := &Widget{
		ranges:   RangesByYear(cfg.DateRanges),
		minYear:  cfg.MinYear,
		maxYear:  cfg.MaxYear,
		compact:  cfg.Compact,
		onChange: cfg.OnChange,
	}
	if w.minYear == 0 {
		w.minYear = domain.DefaultMinYear
	}
	if w.maxYear == 0 {
		w.maxYear = domain.DefaultMaxYear
	}

	w.currentYear = w.minYear

	// An explicit start/end pair overrides the stored range for its year and
	// selects the initial displayed year.
	if start, err := cfg.StartDate.Time(); err == nil {
		if cfg.EndDate.Validate() == nil {
			w.ranges[start.Year()] = domain.DateRange{
				Year:  start.Year(),
				Start: cfg.StartDate,
				End:   cfg.EndDate,
			}
		}
		w.currentYear = start.Year()
	}

	window := w.Window()
	selected := cfg.SelectedDate
	if selected.Validate() != nil || !window.Contains(selected) {
		selected = window.Start
	}
	w.setSelection(selected)

	return w
}

// Window resolves the selectable window for the currently displayed year.
func (w *Widget) Window() domain.ResolvedWindow {
	return Resolve(w.currentYear, w.ranges, w.minYear, w.maxYear)
}

// Months rebuilds the grid for the current state. The grid itself is pure;
// calling Months twice without intervening events yields identical output.
func (w *Widget) Months() []MonthBlock {
	return Build(w.currentYear, w.Window(), w.selected, w.compact)
}

// Navigate moves the displayed year one step. Candidates outside
// [minYear, maxYear] are ignored: the call is a no-op, not an error.
// Returns true when the displayed year changed.
func (w *Widget) Navigate(dir Direction) bool {
	candidate := w.currentYear + 1
	if dir == Prev {
		candidate = w.currentYear - 1
	}
	if candidate < w.minYear || candidate > w.maxYear {
		return false
	}
	w.currentYear = candidate
	return true
}

// Select picks a date. Only dates in selectable state may be selected;
// selecting a disabled or padding cell is a no-op. On success the bound input
// value is synchronized and the change notification fires. Returns true when
// the selection changed.
func (w *Widget) Select(date types.DateString) bool {
	if date.Validate() != nil {
		return false
	}
	if !w.Window().Contains(date) {
		return false
	}
	w.setSelection(date)
	return true
}

// Year returns the currently displayed year.
func (w *Widget) Year() int {
	return w.currentYear
}

// SelectedDate returns the current selection; zero when nothing is
// selectable.
func (w *Widget) SelectedDate() types.DateString {
	return w.selected
}

// InputValue returns the ISO YYYY-MM-DD string synchronized to the bound form
// field; empty when nothing is selected.
func (w *Widget) InputValue() string {
	return w.inputValue
}

func (w *Widget) setSelection(date types.DateString) {
	w.selected = date
	w.inputValue = date.String()
	if w.onChange != nil && !date.IsZero() {
		w.onChange(date)
	}
}
