package service

import (
	"context"
	"time"
)

// PaymentCreatedEvent документ о созданном платеже для внешнего webhook
type PaymentCreatedEvent struct {
	EventID   string    `json:"event_id"`
	PaymentID string    `json:"paymentId"`
	ChatID    int64     `json:"chatId"`
	PlanKey   string    `json:"planKey"`
	PlanName  string    `json:"planName"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// IEventWebhook исходящие вызовы кастомного webhook
type IEventWebhook interface {
	// PaymentCreated шлёт событие о новом платеже; вызывающий игнорирует
	// ошибку, кроме логирования
	PaymentCreated(ctx context.Context, event PaymentCreatedEvent) error

	// SendChatMessage шлёт {"content": text} на chat-webhook endpoint
	SendChatMessage(ctx context.Context, text string) error
}
