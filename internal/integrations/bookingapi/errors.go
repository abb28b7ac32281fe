package bookingapi

import "errors"

var (
	// ErrNotConfigured возвращается, когда URL или ключ API не заданы
	// Отсутствие конфигурации - нормальное состояние: вызывающий код
	// переключается на встроенные данные
	ErrNotConfigured = errors.New("bookingapi client: api is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrRejected возвращается, когда API вернуло success=false
	ErrRejected = errors.New("bookingapi client: booking rejected by api")
)
