package submit_booking

import (
	submitBooking "github.com/everliz/VIP-BookingService/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
// Поля формы приходят строками, как их отправляет фронтенд
type SubmitBookingRequest struct {
	FormToken string `json:"formToken"`

	SelectedDate   string `json:"selectedDate"` // "2025-09-20"
	Attendees      string `json:"attendees"`
	Session        string `json:"session"`
	TentPreference string `json:"tentPreference"`
	SelectedTent   string `json:"selectedTent"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Message   string `json:"message"`

	NewsletterOptIn bool `json:"newsletterOptIn"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Message      string `json:"message"`
	SubmissionID int64  `json:"submissionId"`
	Reference    string `json:"reference"`
	RedirectURL  string `json:"redirectUrl,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(sessionID string) *submitBooking.Request {
	return &submitBooking.Request{
		SessionID:       sessionID,
		FormToken:       r.FormToken,
		SelectedDate:    r.SelectedDate,
		Attendees:       r.Attendees,
		Session:         r.Session,
		TentPreference:  r.TentPreference,
		SelectedTent:    r.SelectedTent,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Company:         r.Company,
		Message:         r.Message,
		NewsletterOptIn: r.NewsletterOptIn,
	}
}
