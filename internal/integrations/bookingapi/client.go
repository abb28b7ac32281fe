package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CredentialsSource источник учетных данных API
// Учетные данные читаются на каждый вызов: админ может изменить их в
// настройках без перезапуска сервиса
type CredentialsSource interface {
	APICredentials(ctx context.Context) (baseURL, apiKey string, err error)
}

// Client клиент External Booking API
type Client struct {
	creds      CredentialsSource
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics // может быть nil, если метрики выключены
}

// NewClient создает новый экземпляр клиента External Booking API
func NewClient(creds CredentialsSource, timeout time.Duration, log Logger, m *metrics.Metrics) *Client {
	return &Client{
		creds: creds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: m,
	}
}

// IsConfigured сообщает, заданы ли URL и ключ API
func (c *Client) IsConfigured(ctx context.Context) bool {
	baseURL, apiKey, err := c.creds.APICredentials(ctx)
	return err == nil && baseURL != "" && apiKey != ""
}

// GetTents получает каталог шатров: GET /tents
// Тело ответа проверяется только на то, что это массив
func (c *Client) GetTents(ctx context.Context) ([]domain.Tent, error) {
	body, err := c.get(ctx, "/tents")
	if err != nil {
		return nil, err
	}

	var tents []domain.Tent
	if err := json.Unmarshal(body, &tents); err != nil {
		c.count("/tents", "invalid")
		return nil, fmt.Errorf("%w: GetTents - decode body: %v", ErrInvalidResponse, err)
	}
	return tents, nil
}

// GetSeasons получает диапазоны дат по годам: GET /seasons
func (c *Client) GetSeasons(ctx context.Context) ([]SeasonRange, error) {
	body, err := c.get(ctx, "/seasons")
	if err != nil {
		return nil, err
	}

	var seasons []SeasonRange
	if err := json.Unmarshal(body, &seasons); err != nil {
		c.count("/seasons", "invalid")
		return nil, fmt.Errorf("%w: GetSeasons - decode body: %v", ErrInvalidResponse, err)
	}
	return seasons, nil
}

// SubmitBooking зеркалирует заявку во внешнюю систему: POST /bookings
// Вызывается строго после локального сохранения; ошибка здесь не откатывает
// локальную запись
func (c *Client) SubmitBooking(ctx context.Context, payload *BookingPayload) (*BookingResult, error) {
	baseURL, apiKey, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: SubmitBooking - encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: SubmitBooking - create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.count("/bookings", "error")
		return nil, fmt.Errorf("%w: SubmitBooking - execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.count("/bookings", "error")
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: SubmitBooking - unexpected status code %d: %s",
			ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var envelope struct {
		apiEnvelope
		Data BookingResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.count("/bookings", "invalid")
		return nil, fmt.Errorf("%w: SubmitBooking - decode response: %v", ErrInvalidResponse, err)
	}
	if !envelope.Success {
		c.count("/bookings", "rejected")
		return nil, fmt.Errorf("%w: %s", ErrRejected, envelope.Message)
	}

	c.count("/bookings", "ok")
	return &envelope.Data, nil
}

// get выполняет GET запрос и возвращает сырое тело ответа
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	baseURL, apiKey, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request for %s: %v", ErrInternal, endpoint, err)
	}
	c.setHeaders(req, apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.count(endpoint, "error")
		return nil, fmt.Errorf("%w: execute request for %s: %v", ErrInternal, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.count(endpoint, "error")
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d for %s: %s",
			ErrInvalidResponse, resp.StatusCode, endpoint, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.count(endpoint, "error")
		return nil, fmt.Errorf("%w: read body for %s: %v", ErrInvalidResponse, endpoint, err)
	}

	c.count(endpoint, "ok")
	return body, nil
}

// credentials читает учетные данные и проверяет, что API сконфигурирован
func (c *Client) credentials(ctx context.Context) (string, string, error) {
	baseURL, apiKey, err := c.creds.APICredentials(ctx)
	if err != nil {
		return "", "", fmt.Errorf("%w: read credentials: %v", ErrInternal, err)
	}
	if baseURL == "" || apiKey == "" {
		return "", "", ErrNotConfigured
	}
	return strings.TrimRight(baseURL, "/"), apiKey, nil
}

func (c *Client) setHeaders(req *http.Request, apiKey string) {
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")
}

func (c *Client) count(endpoint, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ExternalAPICallsTotal.WithLabelValues(endpoint, outcome).Inc()
}
