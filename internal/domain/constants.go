package domain

// Default year bounds for the festival calendar. Admins can override both via
// settings.
const (
	DefaultMinYear = 2025
	DefaultMaxYear = 2028
)

// Heuristic window used when a year has no explicit admin-defined range:
// the festival is assumed to start on the first Saturday on or after
// September 15 and run for HeuristicRunDays days. This is a policy choice
// reproducing the historical pattern, not an authoritative calendar.
const (
	HeuristicStartMonth = 9 // September
	HeuristicStartDay   = 15
	HeuristicRunDays    = 16
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AttendeeOptions is the fixed whitelist of group sizes offered by the form.
// Server-side validation only requires a positive integer, so tampered but
// sane values are still accepted.
var AttendeeOptions = []int{1, 2, 3, 4, 5, 6, 8, 10, 12, 15, 20}

// Admin listing defaults
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// ValidStatuses lists every status an admin may assign to a submission.
var ValidStatuses = []SubmissionStatus{
	StatusNew,
	StatusContacted,
	StatusConfirmed,
	StatusCancelled,
}

// ValidStatus reports whether s is one of the recognized submission statuses.
func ValidStatus(s SubmissionStatus) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidSession reports whether s is a recognized session value.
func ValidSession(s Session) bool {
	return s == SessionDay || s == SessionEvening
}

// ValidTentPreference reports whether p is a recognized tent preference.
func ValidTentPreference(p TentPreference) bool {
	return p == TentAny || p == TentSpecific
}
