package domain

import "time"

// PaymentStatus статус транзакции у провайдера. Хранит сырой токен как есть:
// PushinPay возвращает статусы в разном регистре.
type PaymentStatus string

const (
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusCreated   PaymentStatus = "created"
	PaymentStatusPending   PaymentStatus = "pending"
)

// IsSettled ручная проверка статуса считает платёж оплаченным и по CONFIRMED,
// и по PAID. Webhook реагирует только на точный CONFIRMED (см. контроллер) —
// асимметрия унаследована от провайдера и оставлена намеренно.
func (s PaymentStatus) IsSettled() bool {
	return s == PaymentStatusConfirmed || s == PaymentStatusPaid
}

// IsPending платёж создан, но ещё не оплачен
func (s PaymentStatus) IsPending() bool {
	return s == PaymentStatusCreated || s == PaymentStatusPending
}

// PendingPayment контекст платежа, ожидающего подтверждения от провайдера.
// Ключом служит id транзакции, выданный PushinPay при создании.
type PendingPayment struct {
	ChatID    int64
	PlanKey   string
	PlanName  string
	Price     string // исходная цена плана, "19,90"
	CreatedAt time.Time
}
