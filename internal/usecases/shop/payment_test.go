package shop_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	paymentPort "github.com/WazzyDev/PushinPaybot/internal/ports/payment"
	"github.com/WazzyDev/PushinPaybot/internal/ports/service"
	"github.com/WazzyDev/PushinPaybot/internal/usecases/shop"

	"github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/storage/inmemory"
)

type fakeGateway struct {
	charge      *paymentPort.Charge
	createErr   error
	status      domain.PaymentStatus
	statusErr   error
	gotAmount   int64
	createCalls int
}

func (f *fakeGateway) CreateCharge(_ context.Context, amountCents int64) (*paymentPort.Charge, error) {
	f.createCalls++
	f.gotAmount = amountCents
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.charge, nil
}

func (f *fakeGateway) GetStatus(context.Context, string) (domain.PaymentStatus, error) {
	return f.status, f.statusErr
}

type fakeTelegram struct {
	mu        sync.Mutex
	messages  []string
	photos    []string // captions
	answers   []string
	keyboards []map[string]interface{}
}

func (f *fakeTelegram) SendMessage(_ context.Context, _ int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, text)
	return nil
}

func (f *fakeTelegram) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	f.mu.Lock()
	f.keyboards = append(f.keyboards, keyboard)
	f.mu.Unlock()
	return f.SendMessage(ctx, chatID, text)
}

func (f *fakeTelegram) SendPhoto(_ context.Context, _ int64, _ []byte, _, caption string, keyboard map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.photos = append(f.photos, caption)
	f.keyboards = append(f.keyboards, keyboard)
	return nil
}

func (f *fakeTelegram) AnswerCallbackQuery(_ context.Context, _ string, text string, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, text)
	return nil
}

type fakeEvents struct {
	created []service.PaymentCreatedEvent
	err     error
}

func (f *fakeEvents) PaymentCreated(_ context.Context, event service.PaymentCreatedEvent) error {
	f.created = append(f.created, event)
	return f.err
}

func (f *fakeEvents) SendChatMessage(context.Context, string) error { return nil }

type fakeQR struct{}

func (fakeQR) EncodePNG(payload string) ([]byte, error) {
	if payload == "" {
		return nil, errors.New("empty payload")
	}
	return []byte("png"), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func callbackQuery(chatID int64, data string) *domain.CallbackQuery {
	return &domain.CallbackQuery{
		ID:      "cb-1",
		Data:    &data,
		Message: &domain.Message{Chat: &domain.Chat{ID: chatID}},
	}
}

func basicPlans() []domain.Plan {
	return []domain.Plan{
		{Key: "basic", Name: "basic", Price: "19,90"},
		{Key: "pro", Name: "Pro", Price: "49.90"},
	}
}

func TestCreatePayment(t *testing.T) {
	gateway := &fakeGateway{charge: &paymentPort.Charge{ID: "tx-777", PixCode: "pix-copia-e-cola"}}
	tg := &fakeTelegram{}
	events := &fakeEvents{}
	reg := inmemory.NewPendingRegistry()

	svc := shop.New(nil, basicPlans(), nil, gateway, reg, events, fakeQR{}, tg, testLogger())

	err := svc.HandleCallback(context.Background(), callbackQuery(42, "basic"), 1)
	require.NoError(t, err)

	// провайдер получил цену в сентаво
	require.Equal(t, int64(1990), gateway.gotAmount)

	// реестр содержит контекст по id транзакции
	pending, ok := reg.Take("tx-777")
	require.True(t, ok)
	require.Equal(t, int64(42), pending.ChatID)
	require.Equal(t, "basic", pending.PlanKey)

	// событие о создании ушло на webhook
	require.Len(t, events.created, 1)
	require.Equal(t, "tx-777", events.created[0].PaymentID)
	require.NotEmpty(t, events.created[0].EventID)

	// покупатель получил QR с реквизитами и кнопкой перепроверки
	require.Len(t, tg.photos, 1)
	require.Contains(t, tg.photos[0], "basic")
	require.Contains(t, tg.photos[0], "pix-copia-e-cola")
}

func TestCreatePayment_InvalidPlan(t *testing.T) {
	gateway := &fakeGateway{}
	tg := &fakeTelegram{}
	reg := inmemory.NewPendingRegistry()

	svc := shop.New(nil, basicPlans(), nil, gateway, reg, nil, fakeQR{}, tg, testLogger())

	err := svc.HandleCallback(context.Background(), callbackQuery(42, "nonexistent"), 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidPlan))
	require.True(t, domain.IsBusinessError(err))

	require.Equal(t, 0, gateway.createCalls)
	require.Equal(t, 0, reg.Len())
}

func TestCreatePayment_InvalidPrice(t *testing.T) {
	gateway := &fakeGateway{}
	tg := &fakeTelegram{}
	reg := inmemory.NewPendingRegistry()
	plans := []domain.Plan{{Key: "broken", Name: "Broken", Price: "not-a-price"}}

	svc := shop.New(nil, plans, nil, gateway, reg, nil, fakeQR{}, tg, testLogger())

	err := svc.HandleCallback(context.Background(), callbackQuery(42, "broken"), 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidPrice))
	require.Equal(t, 0, gateway.createCalls)
}

func TestCreatePayment_GatewayFailure(t *testing.T) {
	gateway := &fakeGateway{createErr: domain.ErrGatewayUnavailable}
	tg := &fakeTelegram{}
	reg := inmemory.NewPendingRegistry()

	svc := shop.New(nil, basicPlans(), nil, gateway, reg, nil, fakeQR{}, tg, testLogger())

	err := svc.HandleCallback(context.Background(), callbackQuery(42, "basic"), 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrGatewayUnavailable))
	require.Equal(t, 0, reg.Len())

	// пользователь получил короткий ответ об ошибке
	require.NotEmpty(t, tg.answers)
}

// Платёж без PIX-кода создаётся успешно, но рендерить нечего
func TestCreatePayment_NoPixCode(t *testing.T) {
	gateway := &fakeGateway{charge: &paymentPort.Charge{ID: "tx-1"}}
	tg := &fakeTelegram{}
	reg := inmemory.NewPendingRegistry()

	svc := shop.New(nil, basicPlans(), nil, gateway, reg, nil, fakeQR{}, tg, testLogger())

	err := svc.HandleCallback(context.Background(), callbackQuery(42, "basic"), 1)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())
	require.Empty(t, tg.photos)
}

// Падение events webhook не прерывает флоу создания
func TestCreatePayment_EventWebhookFailure(t *testing.T) {
	gateway := &fakeGateway{charge: &paymentPort.Charge{ID: "tx-1", PixCode: "pix"}}
	tg := &fakeTelegram{}
	events := &fakeEvents{err: errors.New("webhook down")}
	reg := inmemory.NewPendingRegistry()

	svc := shop.New(nil, basicPlans(), nil, gateway, reg, events, fakeQR{}, tg, testLogger())

	err := svc.HandleCallback(context.Background(), callbackQuery(42, "basic"), 1)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())
	require.Len(t, tg.photos, 1)
}

func TestCheckPaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.PaymentStatus
		expected string
	}{
		{name: "confirmed", status: domain.PaymentStatusConfirmed, expected: "confirmado"},
		{name: "paid counts as settled", status: domain.PaymentStatusPaid, expected: "confirmado"},
		{name: "pending", status: domain.PaymentStatusPending, expected: "ainda"},
		{name: "created", status: domain.PaymentStatusCreated, expected: "ainda"},
		{name: "other", status: domain.PaymentStatus("expired"), expected: "expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeGateway{status: tt.status}
			tg := &fakeTelegram{}
			reg := inmemory.NewPendingRegistry()

			svc := shop.New(nil, basicPlans(), nil, gateway, reg, nil, fakeQR{}, tg, testLogger())

			err := svc.HandleCallback(context.Background(), callbackQuery(42, "check_tx-1"), 1)
			require.NoError(t, err)
			require.Len(t, tg.messages, 1)
			require.Contains(t, tg.messages[0], tt.expected)
		})
	}
}

func TestCheckPaymentStatus_GatewayError(t *testing.T) {
	gateway := &fakeGateway{statusErr: domain.ErrGatewayRejected}
	tg := &fakeTelegram{}
	reg := inmemory.NewPendingRegistry()

	svc := shop.New(nil, basicPlans(), nil, gateway, reg, nil, fakeQR{}, tg, testLogger())

	err := svc.HandleCallback(context.Background(), callbackQuery(42, "check_tx-1"), 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrGatewayRejected))
	require.Empty(t, tg.messages)
}
