package shop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	"github.com/WazzyDev/PushinPaybot/internal/pkg/money"
	"github.com/WazzyDev/PushinPaybot/internal/ports/service"
	tgPort "github.com/WazzyDev/PushinPaybot/internal/ports/telegram"
	"github.com/WazzyDev/PushinPaybot/internal/usecases/shop/texts"
)

// checkCallbackPrefix callback data кнопки ручной перепроверки: "check_<id>"
const checkCallbackPrefix = "check_"

// HandleCallback обрабатывает нажатие inline-кнопки: либо перепроверка
// статуса, либо выбор плана
func (s *Service) HandleCallback(ctx context.Context, query *domain.CallbackQuery, updateID int64) error {
	if query == nil || query.Message == nil || query.Message.Chat == nil {
		return fmt.Errorf("callback query has no chat")
	}
	if query.Data == nil {
		return fmt.Errorf("callback query has no data")
	}

	chatID := query.Message.Chat.ID
	data := *query.Data

	if paymentID, ok := strings.CutPrefix(data, checkCallbackPrefix); ok {
		return s.checkPaymentStatus(ctx, query.ID, chatID, paymentID)
	}

	return s.createPayment(ctx, query.ID, chatID, data, updateID)
}

// createPayment флоу создания платежа: план → цена → провайдер → реестр →
// событие на webhook → QR покупателю
func (s *Service) createPayment(ctx context.Context, callbackID string, chatID int64, planKey string, updateID int64) error {
	plan, ok := s.plansByKey[planKey]
	if !ok {
		s.log.Warn("callback with unknown plan key",
			"plan_key", planKey,
			"chat_id", chatID,
			"update_id", updateID,
		)
		s.answerCallback(ctx, callbackID, texts.InvalidPlanAnswer)
		return domain.WrapBusinessError(fmt.Errorf("%w: %q", domain.ErrInvalidPlan, planKey))
	}

	amountCents, err := money.ParsePrice(plan.Price)
	if err != nil {
		s.log.Error("plan has malformed price",
			"error", err,
			"plan_key", plan.Key,
			"price", plan.Price,
		)
		s.answerCallback(ctx, callbackID, texts.InvalidPriceAnswer)
		return domain.WrapBusinessError(err)
	}

	charge, err := s.gateway.CreateCharge(ctx, amountCents)
	if err != nil {
		s.log.Error("failed to create pix charge",
			"error", err,
			"plan_key", plan.Key,
			"amount_cents", amountCents,
			"chat_id", chatID,
		)
		s.answerCallback(ctx, callbackID, texts.PaymentFailedAnswer)
		return domain.WrapBusinessError(err)
	}

	pending := domain.PendingPayment{
		ChatID:    chatID,
		PlanKey:   plan.Key,
		PlanName:  plan.Name,
		Price:     plan.Price,
		CreatedAt: time.Now(),
	}
	s.pending.Put(charge.ID, pending)

	// Событие о созданном платеже — best-effort, флоу не прерывает
	if s.eventWebhook != nil {
		event := service.PaymentCreatedEvent{
			EventID:   uuid.NewString(),
			PaymentID: charge.ID,
			ChatID:    chatID,
			PlanKey:   plan.Key,
			PlanName:  plan.Name,
			Price:     plan.Price,
			CreatedAt: pending.CreatedAt,
		}
		if err := s.eventWebhook.PaymentCreated(ctx, event); err != nil {
			s.log.Warn("failed to send payment created event",
				"error", err,
				"payment_id", charge.ID,
			)
		}
	}

	s.answerCallback(ctx, callbackID, texts.FormatPaymentGenerated(plan.Name))

	if charge.PixCode == "" {
		s.log.Warn("charge created without pix code, nothing to render",
			"payment_id", charge.ID,
			"plan_key", plan.Key,
		)
		return nil
	}

	return s.sendPaymentDetails(ctx, chatID, charge.ID, plan, charge.PixCode)
}

// sendPaymentDetails рендерит QR и шлёт покупателю фото с реквизитами
// и кнопкой перепроверки
func (s *Service) sendPaymentDetails(ctx context.Context, chatID int64, paymentID string, plan domain.Plan, pixCode string) error {
	caption := s.paymentCaption(plan, pixCode)

	png, err := s.qrEncoder.EncodePNG(pixCode)
	if err != nil {
		s.log.Error("failed to render qr code",
			"error", err,
			"payment_id", paymentID,
		)
		// без QR отправляем реквизиты текстом
		return s.telegramClient.SendMessage(ctx, chatID, caption)
	}

	keyboard := tgPort.InlineKeyboard([]tgPort.InlineButton{{
		Text:         texts.CheckButtonLabel,
		CallbackData: checkCallbackPrefix + paymentID,
	}})

	if err := s.telegramClient.SendPhoto(ctx, chatID, png, "pix.png", caption, keyboard); err != nil {
		return fmt.Errorf("failed to send payment details: %w", err)
	}

	s.log.Info("payment details sent",
		"payment_id", paymentID,
		"plan_key", plan.Key,
		"chat_id", chatID,
	)

	return nil
}

// paymentCaption подпись под QR; шаблон из конфига приоритетнее
func (s *Service) paymentCaption(plan domain.Plan, pixCode string) string {
	if s.cfg.PaymentCaption != "" {
		return fmt.Sprintf(s.cfg.PaymentCaption, plan.Name, plan.Price, pixCode)
	}
	return texts.FormatPaymentCaption(plan.Name, plan.Price, pixCode)
}

// checkPaymentStatus ручная перепроверка статуса по кнопке.
// Идёт напрямую к провайдеру, реестр не трогает
func (s *Service) checkPaymentStatus(ctx context.Context, callbackID string, chatID int64, paymentID string) error {
	status, err := s.gateway.GetStatus(ctx, paymentID)
	if err != nil {
		s.log.Error("failed to check payment status",
			"error", err,
			"payment_id", paymentID,
			"chat_id", chatID,
		)
		s.answerCallback(ctx, callbackID, texts.StatusCheckFailedAnswer)
		return domain.WrapBusinessError(err)
	}

	s.answerCallback(ctx, callbackID, "")

	var statusMsg string
	switch {
	case status.IsSettled():
		statusMsg = texts.StatusSettled
	case status.IsPending():
		statusMsg = texts.StatusPending
	default:
		statusMsg = texts.FormatStatusOther(string(status))
	}

	return s.telegramClient.SendMessage(ctx, chatID, statusMsg)
}

// answerCallback отвечает на callback query; ошибка только логируется,
// основной флоу из-за неё не прерываем
func (s *Service) answerCallback(ctx context.Context, callbackID, text string) {
	if err := s.telegramClient.AnswerCallbackQuery(ctx, callbackID, text, false); err != nil {
		s.log.Warn("failed to answer callback query",
			"error", err,
			"callback_id", callbackID,
		)
	}
}
