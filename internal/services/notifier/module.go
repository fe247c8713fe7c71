package notifier

import (
	"context"
	"fmt"
	"sync"

	"log/slog"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	"github.com/WazzyDev/PushinPaybot/internal/ports/service"
	"github.com/WazzyDev/PushinPaybot/internal/ports/telegram"
	"github.com/WazzyDev/PushinPaybot/internal/usecases/shop/texts"
)

// Config настройки рассылки подтверждений
type Config struct {
	AnnouncementChatID   int64  `envconfig:"ANNOUNCEMENT_CHAT_ID"`  // канал анонсов, 0 — выключено
	ConfirmationTemplate string `envconfig:"CONFIRMATION_TEMPLATE"` // два %s: имя плана и id платежа
}

// Service рассылает уведомление о подтверждённом платеже покупателю,
// в канал анонсов и на chat-webhook. Все три отправки best-effort и
// независимы: падение одной не мешает остальным
type Service struct {
	cfg            *Config
	telegramClient telegram.IClient
	eventWebhook   service.IEventWebhook
	log            *slog.Logger
}

func New(
	cfg *Config,
	telegramClient telegram.IClient,
	eventWebhook service.IEventWebhook,
	log *slog.Logger,
) *Service {
	return &Service{
		cfg:            cfg,
		telegramClient: telegramClient,
		eventWebhook:   eventWebhook,
		log:            log,
	}
}

// PaymentConfirmed шлёт текст подтверждения по трём направлениям параллельно.
// Ошибки логируются и не возвращаются — ретраев нет
func (s *Service) PaymentConfirmed(ctx context.Context, paymentID string, pending domain.PendingPayment) {
	message := s.confirmationMessage(pending.PlanName, paymentID)

	var wg sync.WaitGroup

	if pending.ChatID != 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.telegramClient.SendMessage(ctx, pending.ChatID, message); err != nil {
				s.log.Error("failed to notify buyer",
					"error", err,
					"payment_id", paymentID,
					"chat_id", pending.ChatID,
				)
			}
		}()
	}

	if s.cfg != nil && s.cfg.AnnouncementChatID != 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.telegramClient.SendMessage(ctx, s.cfg.AnnouncementChatID, message); err != nil {
				s.log.Error("failed to notify announcement channel",
					"error", err,
					"payment_id", paymentID,
					"chat_id", s.cfg.AnnouncementChatID,
				)
			}
		}()
	}

	if s.eventWebhook != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.eventWebhook.SendChatMessage(ctx, message); err != nil {
				s.log.Error("failed to notify chat webhook",
					"error", err,
					"payment_id", paymentID,
				)
			}
		}()
	}

	wg.Wait()

	s.log.Info("payment confirmation dispatched",
		"payment_id", paymentID,
		"plan_key", pending.PlanKey,
		"chat_id", pending.ChatID,
	)
}

// confirmationMessage текст подтверждения; шаблон из конфига приоритетнее
func (s *Service) confirmationMessage(planName, paymentID string) string {
	if s.cfg != nil && s.cfg.ConfirmationTemplate != "" {
		return fmt.Sprintf(s.cfg.ConfirmationTemplate, planName, paymentID)
	}
	return texts.FormatPaymentConfirmed(planName, paymentID)
}
