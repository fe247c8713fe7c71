package notifier_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	"github.com/WazzyDev/PushinPaybot/internal/ports/service"
	"github.com/WazzyDev/PushinPaybot/internal/services/notifier"
)

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegram struct {
	mu       sync.Mutex
	sent     []sentMessage
	failChat int64 // отправка в этот чат падает
}

func (f *fakeTelegram) SendMessage(_ context.Context, chatID int64, text string) error {
	f.mu.Lock()
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	f.mu.Unlock()

	if chatID == f.failChat && f.failChat != 0 {
		return errors.New("telegram API error: chat not found (code: 400)")
	}
	return nil
}

func (f *fakeTelegram) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, _ map[string]interface{}) error {
	return f.SendMessage(ctx, chatID, text)
}

func (f *fakeTelegram) SendPhoto(_ context.Context, chatID int64, _ []byte, _, caption string, _ map[string]interface{}) error {
	return f.SendMessage(context.Background(), chatID, caption)
}

func (f *fakeTelegram) AnswerCallbackQuery(context.Context, string, string, bool) error {
	return nil
}

type fakeWebhook struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (f *fakeWebhook) PaymentCreated(context.Context, service.PaymentCreatedEvent) error { return nil }

func (f *fakeWebhook) SendChatMessage(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, text)
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPaymentConfirmed_AllDestinations(t *testing.T) {
	tg := &fakeTelegram{}
	wh := &fakeWebhook{}
	svc := notifier.New(&notifier.Config{AnnouncementChatID: -100}, tg, wh, testLogger())

	svc.PaymentConfirmed(context.Background(), "tx-1", domain.PendingPayment{
		ChatID:   42,
		PlanKey:  "basic",
		PlanName: "Basic",
	})

	require.Len(t, tg.sent, 2)

	chats := map[int64]bool{}
	for _, m := range tg.sent {
		chats[m.chatID] = true
		require.Contains(t, m.text, "Basic")
		require.Contains(t, m.text, "tx-1")
	}
	require.True(t, chats[42], "buyer chat notified")
	require.True(t, chats[-100], "announcement channel notified")

	require.Len(t, wh.messages, 1)
	require.Contains(t, wh.messages[0], "tx-1")
}

// Падение отправки в канал анонсов не мешает покупателю и webhook
func TestPaymentConfirmed_PartialFailure(t *testing.T) {
	tg := &fakeTelegram{failChat: -100}
	wh := &fakeWebhook{}
	svc := notifier.New(&notifier.Config{AnnouncementChatID: -100}, tg, wh, testLogger())

	svc.PaymentConfirmed(context.Background(), "tx-1", domain.PendingPayment{
		ChatID:   42,
		PlanName: "Basic",
	})

	require.Len(t, tg.sent, 2, "both telegram sends attempted")
	require.Len(t, wh.messages, 1, "webhook send attempted")
}

func TestPaymentConfirmed_NoOptionalDestinations(t *testing.T) {
	tg := &fakeTelegram{}
	svc := notifier.New(&notifier.Config{}, tg, nil, testLogger())

	svc.PaymentConfirmed(context.Background(), "tx-1", domain.PendingPayment{
		ChatID:   42,
		PlanName: "Basic",
	})

	require.Len(t, tg.sent, 1)
	require.Equal(t, int64(42), tg.sent[0].chatID)
}
