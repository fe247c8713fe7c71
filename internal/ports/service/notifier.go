package service

import (
	"context"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
)

// INotifier рассылка уведомления о подтверждённом платеже.
// Best-effort: каждая из трёх отправок независима, ошибки не возвращаются
type INotifier interface {
	PaymentConfirmed(ctx context.Context, paymentID string, pending domain.PendingPayment)
}
