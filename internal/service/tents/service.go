// Package tents отвечает за каталог шатров: API с кешированием и
// встроенным набором на случай недоступности внешних источников.
// Catalog никогда не возвращает ошибку - источники перебираются до
// встроенного набора
package tents

import (
	"context"
	"time"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/integrations/bookingapi"
)

const catalogTTL = 15 * time.Minute

// Service сервис каталога шатров
type Service struct {
	api    TentsAPI
	cache  Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
// cache может быть nil - тогда кеширование отключено
func NewService(api TentsAPI, cache Cache, logger Logger) *Service {
	return &Service{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

// Catalog возвращает каталог шатров
// Источники в порядке приоритета: API → кеш → встроенный набор
func (s *Service) Catalog(ctx context.Context) []domain.Tent {
	if s.api.IsConfigured(ctx) {
		catalog, err := s.api.GetTents(ctx)
		if err == nil && len(catalog) > 0 {
			s.cacheSet(ctx, catalog)
			return catalog
		}
		if err != nil {
			s.logger.Warn("Catalog: api unavailable: %v", err)
		}
	}

	if s.cache != nil {
		catalog, err := s.cache.Get(ctx)
		if err == nil && len(catalog) > 0 {
			s.logger.Info("Catalog: serving %d tents from cache", len(catalog))
			return catalog
		}
	}

	return bookingapi.BuiltinTents
}

// Known проверяет, есть ли шатер с таким id в каталоге
func (s *Service) Known(ctx context.Context, tentID string) bool {
	if tentID == domain.AnyTentID {
		return true
	}
	for _, tent := range s.Catalog(ctx) {
		if tent.ID == tentID {
			return true
		}
	}
	return false
}

func (s *Service) cacheSet(ctx context.Context, catalog []domain.Tent) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, catalog, catalogTTL); err != nil {
		s.logger.Warn("cacheSet: failed to store catalog: %v", err)
	}
}
