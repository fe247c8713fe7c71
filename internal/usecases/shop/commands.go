package shop

import (
	"context"
	"fmt"

	tgPort "github.com/WazzyDev/PushinPaybot/internal/ports/telegram"
	"github.com/WazzyDev/PushinPaybot/internal/usecases/shop/texts"
)

// HandleCommand роутит команды бота
func (s *Service) HandleCommand(ctx context.Context, chatID int64, command string, updateID int64) error {
	switch command {
	case "start":
		return s.sendCatalog(ctx, chatID)
	default:
		s.log.Debug("unknown command",
			"command", command,
			"chat_id", chatID,
			"update_id", updateID,
		)
		return s.telegramClient.SendMessage(ctx, chatID, texts.UnknownCommand)
	}
}

// sendCatalog отправляет витрину: фото + кнопка на каждый план
func (s *Service) sendCatalog(ctx context.Context, chatID int64) error {
	caption := s.cfg.CatalogCaption
	if caption == "" {
		caption = texts.DefaultCatalogCaption
	}

	rows := make([][]tgPort.InlineButton, 0, len(s.plans)+len(s.cfg.ExtraButtons))
	for _, plan := range s.plans {
		rows = append(rows, []tgPort.InlineButton{{
			Text:         texts.FormatPlanButton(plan.Name, plan.Price),
			CallbackData: plan.Key,
		}})
	}
	for _, button := range s.cfg.ExtraButtons {
		rows = append(rows, []tgPort.InlineButton{{Text: button.Text, URL: button.URL}})
	}

	keyboard := tgPort.InlineKeyboard(rows...)

	if len(s.catalogPhoto) > 0 {
		if err := s.telegramClient.SendPhoto(ctx, chatID, s.catalogPhoto, "catalog.jpg", caption, keyboard); err != nil {
			return fmt.Errorf("failed to send catalog photo: %w", err)
		}
		return nil
	}

	// без картинки каталог уходит текстом
	if err := s.telegramClient.SendMessageWithKeyboard(ctx, chatID, caption, keyboard); err != nil {
		return fmt.Errorf("failed to send catalog: %w", err)
	}

	return nil
}
