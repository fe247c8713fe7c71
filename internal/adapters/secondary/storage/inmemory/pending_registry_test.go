package inmemory_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/storage/inmemory"
	"github.com/WazzyDev/PushinPaybot/internal/domain"
)

func TestPendingRegistry_PutTake(t *testing.T) {
	reg := inmemory.NewPendingRegistry()

	pending := domain.PendingPayment{
		ChatID:   42,
		PlanKey:  "basic",
		PlanName: "Basic",
		Price:    "19,90",
	}

	reg.Put("X", pending)
	require.Equal(t, 1, reg.Len())

	got, ok := reg.Take("X")
	require.True(t, ok)
	require.Equal(t, pending, got)
	require.Equal(t, 0, reg.Len())

	// повторный Take по тому же ключу
	_, ok = reg.Take("X")
	require.False(t, ok)
}

func TestPendingRegistry_TakeUnknown(t *testing.T) {
	reg := inmemory.NewPendingRegistry()

	_, ok := reg.Take("never-created")
	require.False(t, ok)
}

func TestPendingRegistry_PutOverwrites(t *testing.T) {
	reg := inmemory.NewPendingRegistry()

	reg.Put("X", domain.PendingPayment{ChatID: 1, PlanKey: "basic"})
	reg.Put("X", domain.PendingPayment{ChatID: 2, PlanKey: "pro"})
	require.Equal(t, 1, reg.Len())

	got, ok := reg.Take("X")
	require.True(t, ok)
	require.Equal(t, int64(2), got.ChatID)
	require.Equal(t, "pro", got.PlanKey)
}

// Дубликаты подтверждения от провайдера должны обработаться ровно один раз
func TestPendingRegistry_ConcurrentTakeExactlyOnce(t *testing.T) {
	reg := inmemory.NewPendingRegistry()
	reg.Put("X", domain.PendingPayment{ChatID: 42, PlanKey: "basic"})

	const workers = 100

	var hits atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok := reg.Take("X"); ok {
				hits.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	require.Equal(t, int64(1), hits.Load())
	require.Equal(t, 0, reg.Len())
}

func TestPendingRegistry_Sweep(t *testing.T) {
	reg := inmemory.NewPendingRegistry()
	reg.Put("old-1", domain.PendingPayment{ChatID: 1})
	reg.Put("old-2", domain.PendingPayment{ChatID: 2})

	// свежие записи переживают Sweep с большим maxAge
	require.Equal(t, 0, reg.Sweep(time.Hour))
	require.Equal(t, 2, reg.Len())

	// нулевой maxAge выметает всё, что вставлено до текущего момента
	time.Sleep(time.Millisecond)
	require.Equal(t, 2, reg.Sweep(0))
	require.Equal(t, 0, reg.Len())
}
