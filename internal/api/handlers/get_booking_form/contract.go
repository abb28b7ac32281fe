package get_booking_form

// TokenIssuer интерфейс выдачи form token
type TokenIssuer interface {
	Issue(sessionID string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
