package payment_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	paymentController "github.com/WazzyDev/PushinPaybot/internal/adapters/primary/http/controllers/payment"
	"github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/storage/inmemory"
	"github.com/WazzyDev/PushinPaybot/internal/domain"
	"github.com/WazzyDev/PushinPaybot/internal/ports/registry"
)

type dispatchCall struct {
	paymentID string
	pending   domain.PendingPayment
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []dispatchCall
}

func (f *fakeNotifier) PaymentConfirmed(_ context.Context, paymentID string, pending domain.PendingPayment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, dispatchCall{paymentID: paymentID, pending: pending})
}

func (f *fakeNotifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func setupRouter(reg registry.IPendingPayments, notifier *fakeNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	paymentController.New(reg, notifier, log).RegisterRoutes(router)

	return router
}

func postWebhook(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWebhook_NoPaymentID(t *testing.T) {
	reg := inmemory.NewPendingRegistry()
	reg.Put("tx-1", domain.PendingPayment{ChatID: 42})
	notifier := &fakeNotifier{}
	router := setupRouter(reg, notifier)

	rec := postWebhook(router, `{"status":"CONFIRMED"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0, notifier.callCount())
	require.Equal(t, 1, reg.Len()) // реестр не тронут
}

func TestWebhook_ConfirmedUnknownID(t *testing.T) {
	reg := inmemory.NewPendingRegistry()
	notifier := &fakeNotifier{}
	router := setupRouter(reg, notifier)

	rec := postWebhook(router, `{"id":"tx-unknown","status":"CONFIRMED"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, notifier.callCount())
}

func TestWebhook_ConfirmedKnownID(t *testing.T) {
	reg := inmemory.NewPendingRegistry()
	pending := domain.PendingPayment{ChatID: 42, PlanKey: "basic", PlanName: "Basic"}
	reg.Put("tx-1", pending)
	notifier := &fakeNotifier{}
	router := setupRouter(reg, notifier)

	rec := postWebhook(router, `{"id":"tx-1","status":"CONFIRMED"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, notifier.callCount())
	require.Equal(t, "tx-1", notifier.calls[0].paymentID)
	require.Equal(t, pending, notifier.calls[0].pending)
	require.Equal(t, 0, reg.Len())

	// дубликат подтверждения — запись уже изъята, повторной рассылки нет
	rec = postWebhook(router, `{"id":"tx-1","status":"CONFIRMED"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, notifier.callCount())
}

func TestWebhook_IDAliases(t *testing.T) {
	for _, body := range []string{
		`{"paymentId":"tx-1","status":"CONFIRMED"}`,
		`{"payment_id":"tx-1","status":"CONFIRMED"}`,
	} {
		t.Run(body, func(t *testing.T) {
			reg := inmemory.NewPendingRegistry()
			reg.Put("tx-1", domain.PendingPayment{ChatID: 42})
			notifier := &fakeNotifier{}
			router := setupRouter(reg, notifier)

			rec := postWebhook(router, body)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, 1, notifier.callCount())
		})
	}
}

// PAID и прочие статусы не триггерят рассылку — только точный CONFIRMED
func TestWebhook_NonConfirmedStatusKeepsEntry(t *testing.T) {
	for _, status := range []string{"PAID", "created", "pending", "whatever"} {
		t.Run(status, func(t *testing.T) {
			reg := inmemory.NewPendingRegistry()
			reg.Put("tx-1", domain.PendingPayment{ChatID: 42})
			notifier := &fakeNotifier{}
			router := setupRouter(reg, notifier)

			rec := postWebhook(router, `{"id":"tx-1","status":"`+status+`"}`)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, 0, notifier.callCount())
			require.Equal(t, 1, reg.Len())
		})
	}
}
