package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/WazzyDev/PushinPaybot/internal/ports/service"
)

const apiTimeout = 30 * time.Second

// Client клиент исходящих вызовов кастомного webhook.
// Обе отправки best-effort: вызывающий логирует ошибку и продолжает флоу
type Client struct {
	cfg        *Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient создаёт новый webhook-клиент. Возвращает nil при пустой конфигурации
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil {
		return nil
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		log: log,
	}
}

// PaymentCreated шлёт событие о созданном платеже на events endpoint
func (c *Client) PaymentCreated(ctx context.Context, event service.PaymentCreatedEvent) error {
	if c == nil || c.cfg.EventsURL == "" {
		return nil
	}

	if err := c.post(ctx, c.cfg.EventsURL, event); err != nil {
		return fmt.Errorf("failed to send payment created event: %w", err)
	}

	c.log.Debug("payment created event sent",
		"event_id", event.EventID,
		"payment_id", event.PaymentID,
	)

	return nil
}

// SendChatMessage шлёт {"content": text} на chat-webhook endpoint
func (c *Client) SendChatMessage(ctx context.Context, text string) error {
	if c == nil || c.cfg.ChatURL == "" {
		return nil
	}

	payload := struct {
		Content string `json:"content"`
	}{
		Content: text,
	}

	if err := c.post(ctx, c.cfg.ChatURL, payload); err != nil {
		return fmt.Errorf("failed to send chat webhook message: %w", err)
	}

	c.log.Debug("chat webhook message sent")

	return nil
}

// post выполняет JSON POST и проверяет статус ответа
func (c *Client) post(ctx context.Context, url string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// Тело не нужно, но вычитываем для переиспользования соединения
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
