package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/WazzyDev/PushinPaybot/internal/ports/registry"
)

const registrySweeperName = "pending-registry-sweeper"

// RegistrySweeper джоба очистки реестра ожидающих платежей: удаляет записи
// старше TTL, чтобы брошенные платежи не копились в памяти
type RegistrySweeper struct {
	pending  registry.IPendingPayments
	ttl      time.Duration
	interval time.Duration
	log      *slog.Logger
}

func NewRegistrySweeper(
	pending registry.IPendingPayments,
	ttl time.Duration,
	interval time.Duration,
	log *slog.Logger,
) *RegistrySweeper {
	return &RegistrySweeper{
		pending:  pending,
		ttl:      ttl,
		interval: interval,
		log:      log,
	}
}

func (j *RegistrySweeper) Name() string {
	return registrySweeperName
}

func (j *RegistrySweeper) NextRun(now time.Time) time.Time {
	return now.Add(j.interval)
}

func (j *RegistrySweeper) Run(_ context.Context) error {
	removed := j.pending.Sweep(j.ttl)
	if removed > 0 {
		j.log.Info("swept stale pending payments",
			"removed", removed,
			"remaining", j.pending.Len(),
			"ttl", j.ttl,
		)
	}
	return nil
}
