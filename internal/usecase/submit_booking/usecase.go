package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/infra/storage/settings"
	"github.com/everliz/VIP-BookingService/internal/integrations/bookingapi"
	"github.com/everliz/VIP-BookingService/pkg/metrics"
	"github.com/everliz/VIP-BookingService/pkg/ptr"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// mirrorTimeout бюджет на зеркалирование заявки во внешний API
const mirrorTimeout = 30 * time.Second

// UseCase use case отправки заявки на бронирование
type UseCase struct {
	submissionRepo SubmissionRepository
	settingsRepo   SettingsRepository
	tokens         TokenVerifier
	tents          TentCatalog
	mirror         MirrorClient
	timeProvider   TimeProvider
	metrics        *metrics.Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	submissionRepo SubmissionRepository,
	settingsRepo SettingsRepository,
	tokens TokenVerifier,
	tents TentCatalog,
	mirror MirrorClient,
	m *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		submissionRepo: submissionRepo,
		settingsRepo:   settingsRepo,
		tokens:         tokens,
		tents:          tents,
		mirror:         mirror,
		timeProvider:   &RealTimeProvider{},
		metrics:        m,
		logger:         logger,
	}
}

// Execute выполняет конвейер отправки заявки
// Каждый шаг - жесткий гейт: первая ошибка прерывает весь вызов.
// Исключение - зеркалирование во внешний API: заявка уже сохранена
// локально, поэтому любая ошибка зеркала только логируется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверка form token
	if err := uc.tokens.Verify(req.SessionID, req.FormToken); err != nil {
		uc.logger.Warn("SubmitBooking: token verification failed: %v", err)
		uc.count("security_rejected")
		return nil, ErrSecurityCheck
	}

	// 2. Очистка и нормализация полей
	payload := sanitize(req)

	// 3. Валидация (собираются все нарушения разом)
	if verr := validatePayload(payload); verr != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %d field(s)", len(verr.Fields))
		uc.count("validation_failed")
		return nil, verr
	}

	// Неизвестный id шатра не блокирует заявку: каталог мог измениться
	// между рендером формы и отправкой
	if payload.TentPreference == string(domain.TentSpecific) && !uc.tents.Known(ctx, payload.SelectedTent) {
		uc.logger.Warn("SubmitBooking: unknown tent id %q, accepting as-is", payload.SelectedTent)
	}

	submission := uc.buildSubmission(payload)

	// 4. Сохранение в Submission Store
	created, err := uc.submissionRepo.Create(ctx, submission)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to persist submission: %v", err)
		uc.count("persistence_failed")
		return nil, fmt.Errorf("%w: Execute - failed to persist submission: %v", ErrInternal, err)
	}
	uc.logger.Info("SubmitBooking: submission id=%d reference=%s persisted", created.ID, created.Reference)

	// 5. Зеркалирование во внешний API (best-effort)
	uc.mirrorSubmission(ctx, created)

	// 6. Redirect из Config Store
	redirectURL := uc.redirectURL(ctx)

	uc.count("success")
	return &Response{
		ID:          created.ID,
		Reference:   created.Reference,
		RedirectURL: redirectURL,
	}, nil
}

func (uc *UseCase) buildSubmission(p *sanitizedPayload) *domain.BookingSubmission {
	selectedTent := p.SelectedTent
	if p.TentPreference == string(domain.TentAny) {
		selectedTent = domain.AnyTentID
	}

	var company, message *string
	if p.Company != "" {
		company = ptr.Ptr(p.Company)
	}
	if p.Message != "" {
		message = ptr.Ptr(p.Message)
	}

	return &domain.BookingSubmission{
		Reference:       newReference(),
		SelectedDate:    types.DateString(p.SelectedDate),
		AttendeeCount:   p.Attendees,
		Session:         domain.Session(p.Session),
		TentPreference:  domain.TentPreference(p.TentPreference),
		SelectedTent:    selectedTent,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Email:           p.Email,
		Phone:           p.Phone,
		Company:         company,
		Message:         message,
		NewsletterOptIn: p.NewsletterOptIn,
		Status:          domain.StatusNew,
		SubmittedAt:     uc.timeProvider.Now(),
	}
}

// mirrorSubmission отправляет заявку во внешний API с отдельным таймаутом
// Родительская отмена не учитывается: локальная запись уже зафиксирована
func (uc *UseCase) mirrorSubmission(ctx context.Context, s *domain.BookingSubmission) {
	if !uc.mirror.IsConfigured(ctx) {
		return
	}

	mirrorCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mirrorTimeout)
	defer cancel()

	result, err := uc.mirror.SubmitBooking(mirrorCtx, &bookingapi.BookingPayload{
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
	})
	if err != nil {
		uc.logger.Warn("SubmitBooking: mirror failed for reference=%s: %v", s.Reference, err)
		return
	}
	uc.logger.Info("SubmitBooking: mirrored reference=%s as external booking %s", s.Reference, result.BookingID)
}

func (uc *UseCase) redirectURL(ctx context.Context) string {
	url, err := uc.settingsRepo.Get(ctx, settings.KeyThankYouPage)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingNotFound) {
			uc.logger.Warn("SubmitBooking: failed to read redirect target: %v", err)
		}
		return ""
	}
	return url
}

func (uc *UseCase) count(result string) {
	if uc.metrics != nil {
		uc.metrics.SubmissionsTotal.WithLabelValues(result).Inc()
	}
}

// newReference генерирует короткий публичный номер заявки
func newReference() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
