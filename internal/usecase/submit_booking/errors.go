package submit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSecurityCheck возвращается при невалидном или истекшем form token
	// Наружу отдается только общий отказ, детали остаются в логах
	ErrSecurityCheck = errors.New("submit_booking: security check failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// ValidationError содержит все найденные ошибки полей разом
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submit_booking: validation failed for %d field(s)", len(e.Fields))
}

// AsValidationError извлекает *ValidationError из цепочки ошибок
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
