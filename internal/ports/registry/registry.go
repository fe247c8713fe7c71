package registry

import (
	"time"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
)

// IPendingPayments реестр платежей, ожидающих подтверждения.
// Единственный владелец записей: пишет флоу создания, забирает webhook
type IPendingPayments interface {
	// Put вставляет или перезаписывает запись по id транзакции
	Put(paymentID string, pending domain.PendingPayment)

	// Take атомарно читает и удаляет запись. Повторный Take по тому же
	// ключу возвращает false — дубликат подтверждения обработан не будет
	Take(paymentID string) (domain.PendingPayment, bool)

	// Len текущее число неподтверждённых платежей
	Len() int

	// Sweep удаляет записи старше maxAge, возвращает число удалённых
	Sweep(maxAge time.Duration) int
}
