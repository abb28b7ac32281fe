package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/infra/storage/settings"
	"github.com/everliz/VIP-BookingService/internal/integrations/bookingapi"
	"github.com/everliz/VIP-BookingService/pkg/formtoken"
)

type fakeRepo struct {
	created *domain.BookingSubmission
	err     error
}

func (f *fakeRepo) Create(_ context.Context, s *domain.BookingSubmission) (*domain.BookingSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *s
	stored.ID = 7
	f.created = &stored
	return &stored, nil
}

type fakeSettings struct {
	values map[string]string
}

func (f *fakeSettings) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", settings.ErrSettingNotFound
}

type fakeVerifier struct {
	err error
}

func (f *fakeVerifier) Verify(_, _ string) error { return f.err }

type fakeCatalog struct {
	known map[string]bool
}

func (f *fakeCatalog) Known(_ context.Context, id string) bool { return f.known[id] }

type fakeMirror struct {
	configured bool
	err        error
	payload    *bookingapi.BookingPayload
}

func (f *fakeMirror) IsConfigured(_ context.Context) bool { return f.configured }

func (f *fakeMirror) SubmitBooking(_ context.Context, p *bookingapi.BookingPayload) (*bookingapi.BookingResult, error) {
	f.payload = p
	if f.err != nil {
		return nil, f.err
	}
	return &bookingapi.BookingResult{BookingID: "ext-1", Status: "new"}, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo, store *fakeSettings, verifier *fakeVerifier, mirror *fakeMirror) *UseCase {
	if store == nil {
		store = &fakeSettings{}
	}
	uc := NewUseCase(repo, store, verifier, &fakeCatalog{known: map[string]bool{"hofbrau": true}}, mirror, nil, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	store := &fakeSettings{values: map[string]string{settings.KeyThankYouPage: "/danke"}}
	mirror := &fakeMirror{configured: true}
	uc := newTestUseCase(repo, store, &fakeVerifier{}, mirror)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, "/danke", resp.RedirectURL)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusNew, repo.created.Status)
	assert.Equal(t, "2025-09-20", repo.created.SelectedDate.String())
	assert.Equal(t, domain.AnyTentID, repo.created.SelectedTent)
	assert.Equal(t, "max@example.com", repo.created.Email)
	assert.Equal(t, time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC), repo.created.SubmittedAt)

	require.NotNil(t, mirror.payload)
	assert.Equal(t, repo.created.Reference, mirror.payload.Reference)
}

func TestExecute_BadTokenDoesNotPersist(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, nil, &fakeVerifier{err: formtoken.ErrTokenInvalid}, &fakeMirror{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSecurityCheck)
	assert.Nil(t, repo.created)
}

func TestExecute_ValidationErrorDoesNotPersist(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, nil, &fakeVerifier{}, &fakeMirror{})

	req := validRequest()
	req.Email = "broken"
	_, err := uc.Execute(context.Background(), req)

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, msgInvalidEmail, verr.Fields[fieldEmail])
	assert.Nil(t, repo.created)
}

func TestExecute_PersistenceFailureIsFatal(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	mirror := &fakeMirror{configured: true}
	uc := newTestUseCase(repo, nil, &fakeVerifier{}, mirror)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, mirror.payload)
}

func TestExecute_MirrorFailureIsLoggedOnly(t *testing.T) {
	repo := &fakeRepo{}
	mirror := &fakeMirror{configured: true, err: errors.New("timeout")}
	uc := newTestUseCase(repo, nil, &fakeVerifier{}, mirror)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestExecute_MirrorSkippedWhenNotConfigured(t *testing.T) {
	repo := &fakeRepo{}
	mirror := &fakeMirror{configured: false}
	uc := newTestUseCase(repo, nil, &fakeVerifier{}, mirror)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, mirror.payload)
}

func TestExecute_UnknownTentAccepted(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, nil, &fakeVerifier{}, &fakeMirror{})

	req := validRequest()
	req.TentPreference = "specific"
	req.SelectedTent = "long-gone-tent"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "long-gone-tent", repo.created.SelectedTent)
}

func TestExecute_NoRedirectConfigured(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, nil, &fakeVerifier{}, &fakeMirror{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "", resp.RedirectURL)
}
