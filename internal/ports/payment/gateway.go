package payment

import (
	"context"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
)

// Charge созданный PIX-платёж на стороне провайдера
type Charge struct {
	ID      string
	PixCode string // copia-e-cola payload; может отсутствовать, создание при этом успешно
}

// IGateway интерфейс платёжного провайдера.
// Use case зависит только от этого интерфейса, не зная деталей реализации
type IGateway interface {
	// CreateCharge создаёт PIX-платёж на amountCents сентаво
	CreateCharge(ctx context.Context, amountCents int64) (*Charge, error)

	// GetStatus возвращает текущий статус транзакции у провайдера.
	// Используется только ручной перепроверкой, реестр не трогает
	GetStatus(ctx context.Context, paymentID string) (domain.PaymentStatus, error)
}
