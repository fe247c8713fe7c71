package pushinpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	paymentPort "github.com/WazzyDev/PushinPaybot/internal/ports/payment"
)

const (
	cashInEndpoint       = "pix/cashIn"
	transactionsEndpoint = "transactions"

	apiTimeout = 30 * time.Second
)

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - клиент для работы с PushinPay API
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент для PushinPay
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: apiTimeout,
		},
		Log: log,
	}
}

// buildURL собирает полный URL из BaseURL и endpoint
func (c *Client) buildURL(endpoint string) string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + endpoint
}

// setHeaders устанавливает стандартные заголовки для запросов к API
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
}

// CreateCharge создаёт PIX-платёж на amountCents сентаво.
// Сетевая ошибка — ErrGatewayUnavailable, не-2xx ответ — ErrGatewayRejected.
// Отсутствие PIX-кода в ответе ошибкой не считается
func (c *Client) CreateCharge(ctx context.Context, amountCents int64) (*paymentPort.Charge, error) {
	reqBody := cashInRequest{
		Value:      amountCents,
		WebhookURL: c.cfg.WebhookURL,
		SplitRules: []interface{}{},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cashIn request: %w", err)
	}

	url := c.buildURL(cashInEndpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Log.Error("pushinpay request failed",
			"error", err,
			"amount_cents", amountCents,
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Log.Error("pushinpay returned non-success status",
			"status_code", resp.StatusCode,
			"amount_cents", amountCents,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("%w: status %d", domain.ErrGatewayRejected, resp.StatusCode)
	}

	var cashIn cashInResponse
	if err := json.Unmarshal(body, &cashIn); err != nil {
		c.Log.Error("failed to unmarshal cashIn response",
			"error", err,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("%w: unmarshal: %v", domain.ErrGatewayRejected, err)
	}

	if cashIn.ID == "" {
		return nil, fmt.Errorf("%w: response has no transaction id", domain.ErrGatewayRejected)
	}

	charge := &paymentPort.Charge{
		ID:      cashIn.ID,
		PixCode: pixPayload(cashIn),
	}

	c.Log.Info("pix charge created",
		"payment_id", charge.ID,
		"amount_cents", amountCents,
		"has_pix_code", charge.PixCode != "",
	)

	return charge, nil
}

// pixPayload достаёт PIX-код из ответа по первому непустому алиасу
func pixPayload(resp cashInResponse) string {
	switch {
	case resp.PixCode != "":
		return resp.PixCode
	case resp.Payload != "":
		return resp.Payload
	default:
		return resp.QRCode
	}
}

// GetStatus возвращает текущий статус транзакции.
// Реестр ожидающих платежей не трогает — это ручная перепроверка
func (c *Client) GetStatus(ctx context.Context, paymentID string) (domain.PaymentStatus, error) {
	url := c.buildURL(transactionsEndpoint) + "/" + paymentID
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Log.Error("pushinpay status request failed",
			"error", err,
			"payment_id", paymentID,
		)
		return "", fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", domain.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Log.Error("pushinpay returned non-success status",
			"status_code", resp.StatusCode,
			"payment_id", paymentID,
			"body_preview", truncateString(string(body), 200),
		)
		return "", fmt.Errorf("%w: status %d", domain.ErrGatewayRejected, resp.StatusCode)
	}

	var tx transactionResponse
	if err := json.Unmarshal(body, &tx); err != nil {
		c.Log.Error("failed to unmarshal transaction response",
			"error", err,
			"payment_id", paymentID,
			"body_preview", truncateString(string(body), 200),
		)
		return "", fmt.Errorf("%w: unmarshal: %v", domain.ErrGatewayRejected, err)
	}

	return domain.PaymentStatus(tx.Status), nil
}
