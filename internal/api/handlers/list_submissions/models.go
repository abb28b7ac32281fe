package list_submissions

import (
	"time"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

// SubmissionResponse HTTP model одной заявки
type SubmissionResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	SelectedDate    string  `json:"selectedDate"`
	Attendees       int     `json:"attendees"`
	Session         string  `json:"session"`
	TentPreference  string  `json:"tentPreference"`
	SelectedTent    string  `json:"selectedTent"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Company         *string `json:"company,omitempty"`
	Message         *string `json:"message,omitempty"`
	NewsletterOptIn bool    `json:"newsletterOptIn"`
	Status          string  `json:"status"`
	SubmittedAt     string  `json:"submittedAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ListResponse HTTP response model страницы заявок
type ListResponse struct {
	Items  []SubmissionResponse `json:"items"`
	Total  int64                `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// FromDomain конвертирует доменную заявку в HTTP модель
func FromDomain(s *domain.BookingSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:              s.ID,
		Reference:       s.Reference,
		SelectedDate:    s.SelectedDate.String(),
		Attendees:       s.AttendeeCount,
		Session:         string(s.Session),
		TentPreference:  string(s.TentPreference),
		SelectedTent:    s.SelectedTent,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		Email:           s.Email,
		Phone:           s.Phone,
		Company:         s.Company,
		Message:         s.Message,
		NewsletterOptIn: s.NewsletterOptIn,
		Status:          string(s.Status),
		SubmittedAt:     s.SubmittedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}
