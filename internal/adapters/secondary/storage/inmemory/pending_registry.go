package inmemory

import (
	"sync"
	"time"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	"github.com/WazzyDev/PushinPaybot/internal/ports/registry"
)

// pendingEntry запись реестра с моментом вставки для Sweep
type pendingEntry struct {
	pending    domain.PendingPayment
	insertedAt time.Time
}

// PendingRegistry in-memory реестр платежей, ожидающих подтверждения.
// Take атомарен относительно конкурентных доставок webhook: ровно один
// вызов по ключу получит запись
type PendingRegistry struct {
	mu      sync.Mutex
	entries map[string]pendingEntry
	now     func() time.Time
}

// NewPendingRegistry создаёт пустой реестр
func NewPendingRegistry() registry.IPendingPayments {
	return &PendingRegistry{
		entries: make(map[string]pendingEntry),
		now:     time.Now,
	}
}

// Put вставляет или перезаписывает запись по id транзакции
func (r *PendingRegistry) Put(paymentID string, pending domain.PendingPayment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[paymentID] = pendingEntry{
		pending:    pending,
		insertedAt: r.now(),
	}
}

// Take атомарно читает и удаляет запись
func (r *PendingRegistry) Take(paymentID string) (domain.PendingPayment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[paymentID]
	if !ok {
		return domain.PendingPayment{}, false
	}

	delete(r.entries, paymentID)
	return entry.pending, true
}

// Len текущее число неподтверждённых платежей
func (r *PendingRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep удаляет записи старше maxAge, возвращает число удалённых.
// Неподтверждённые платёжи иначе копились бы бесконечно
func (r *PendingRegistry) Sweep(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxAge)
	removed := 0

	for id, entry := range r.entries {
		if entry.insertedAt.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}

	return removed
}
