package bookingapi

// SeasonRange модель диапазона дат из External Booking API
type SeasonRange struct {
	Year      int    `json:"year"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// BookingPayload тело запроса POST /bookings
// Повторяет поля заявки в snake_case, как их ожидает API
type BookingPayload struct {
	Reference       string  `json:"reference"`
	SelectedDate    string  `json:"selected_date"`
	Attendees       int     `json:"attendees"`
	Session         string  `json:"session"`
	TentPreference  string  `json:"tent_preference"`
	SelectedTent    string  `json:"selected_tent"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Company         *string `json:"company,omitempty"`
	Message         *string `json:"message,omitempty"`
	NewsletterOptIn bool    `json:"newsletter"`
}

// BookingResult данные успешного ответа POST /bookings
type BookingResult struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// apiEnvelope общий конверт ответов API: {success, data|message}
type apiEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
