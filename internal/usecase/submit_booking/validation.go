package submit_booking

import (
	"regexp"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// Имена полей формы, под которыми ошибки возвращаются клиенту
const (
	fieldSelectedDate   = "selected_date"
	fieldAttendees      = "attendees"
	fieldSession        = "session"
	fieldTentPreference = "tent_preference"
	fieldSelectedTent   = "selected_tent"
	fieldFirstName      = "first_name"
	fieldLastName       = "last_name"
	fieldEmail          = "email"
	fieldPhone          = "phone"
)

// Сообщения об ошибках - дословно те, что показывает форма
const (
	msgRequired     = "This field is required"
	msgInvalidEmail = "Please enter a valid email address"
	msgSelectTent   = "Please select a tent"
	msgInvalidDate  = "Please select a valid date"
	msgInvalidCount = "Please enter a valid number of attendees"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

// validatePayload проверяет очищенные данные формы
// Все правила независимы: собираются все нарушения разом, без short-circuit
// Возвращает nil, если нарушений нет
func validatePayload(p *sanitizedPayload) *ValidationError {
	fields := make(map[string]string)

	required := map[string]string{
		fieldSelectedDate:   p.SelectedDate,
		fieldAttendees:      p.AttendeesRaw,
		fieldSession:        p.Session,
		fieldTentPreference: p.TentPreference,
		fieldFirstName:      p.FirstName,
		fieldLastName:       p.LastName,
		fieldEmail:          p.Email,
		fieldPhone:          p.Phone,
	}
	for field, value := range required {
		if value == "" {
			fields[field] = msgRequired
		}
	}

	if p.SelectedDate != "" {
		if _, err := types.NewDateStringFromString(p.SelectedDate); err != nil {
			fields[fieldSelectedDate] = msgInvalidDate
		}
	}

	if p.AttendeesRaw != "" && p.Attendees <= 0 {
		fields[fieldAttendees] = msgInvalidCount
	}

	if p.Session != "" && !domain.ValidSession(domain.Session(p.Session)) {
		fields[fieldSession] = msgRequired
	}

	if p.TentPreference != "" && !domain.ValidTentPreference(domain.TentPreference(p.TentPreference)) {
		fields[fieldTentPreference] = msgRequired
	}

	if p.Email != "" && !emailPattern.MatchString(p.Email) {
		fields[fieldEmail] = msgInvalidEmail
	}

	if p.TentPreference == string(domain.TentSpecific) {
		if p.SelectedTent == "" || p.SelectedTent == domain.AnyTentID {
			fields[fieldSelectedTent] = msgSelectTent
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
