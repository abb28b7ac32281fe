package domain

import (
	"time"

	"github.com/everliz/VIP-BookingService/pkg/types"
)

// SubmissionStatus represents the processing state of a booking inquiry.
// Transitions between statuses are free: an admin may assign any status at any
// time, no workflow order is enforced.
type SubmissionStatus string

const (
	StatusNew       SubmissionStatus = "new"
	StatusContacted SubmissionStatus = "contacted"
	StatusConfirmed SubmissionStatus = "confirmed"
	StatusCancelled SubmissionStatus = "cancelled"
)

// Session is the part of the day the visitor wants a table for.
type Session string

const (
	SessionDay     Session = "day"
	SessionEvening Session = "evening"
)

// TentPreference says whether the visitor cares which tent they end up in.
type TentPreference string

const (
	// TentAny means any of the big tents will do.
	TentAny TentPreference = "any"
	// TentSpecific means the visitor picked a tent from the gallery.
	TentSpecific TentPreference = "specific"
)

// AnyTentID is the catalog-neutral tent id stored when the visitor has no
// tent preference.
const AnyTentID = "any"

// BookingSubmission represents one booking inquiry submitted by a visitor.
type BookingSubmission struct {
	ID        int64
	Reference string // public reference shown to the visitor

	SelectedDate   types.DateString
	AttendeeCount  int
	Session        Session
	TentPreference TentPreference
	SelectedTent   string // tent id, or AnyTentID

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   *string
	Message   *string

	NewsletterOptIn bool

	Status      SubmissionStatus
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// WantsSpecificTent returns true if the visitor picked a tent preference that
// requires a concrete tent id.
func (s *BookingSubmission) WantsSpecificTent() bool {
	return s.TentPreference == TentSpecific
}

// IsOpen returns true while the inquiry still needs admin attention.
func (s *BookingSubmission) IsOpen() bool {
	return s.Status == StatusNew || s.Status == StatusContacted
}

// SubmissionFilter describes the admin listing filter.
type SubmissionFilter struct {
	Status *SubmissionStatus // optional, nil = all statuses
	Limit  int               // page size, 0 = DefaultPageSize
	Offset int
}
