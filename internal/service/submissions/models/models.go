package models

import "github.com/everliz/VIP-BookingService/internal/domain"

// Page страница заявок с общим количеством для пагинации
type Page struct {
	Items  []*domain.BookingSubmission
	Total  int64
	Limit  int
	Offset int
}
