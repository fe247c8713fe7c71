package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
)

// HandleUpdate Основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	if update.CallbackQuery != nil {
		return s.handleCallback(ctx, update.CallbackQuery, update.UpdateID)
	}

	if update.Message != nil {
		return s.handleMessage(ctx, update.Message, update.UpdateID)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение - роутинг в usecase
func (s *Service) handleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From == nil || message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat == nil {
		return fmt.Errorf("message has no chat")
	}

	if message.Chat.Type != "private" {
		s.Log.Warn("ignoring message from group/chat",
			"update_id", updateID,
			"chat_type", message.Chat.Type,
			"chat_id", message.Chat.ID,
		)
		return nil
	}

	if message.Text == nil || !IsCommand(*message.Text) {
		s.Log.Debug("ignoring non-command message", "update_id", updateID)
		return nil
	}

	command := ParseCommand(*message.Text)

	err := s.BotService.HandleCommand(ctx, message.Chat.ID, command, updateID)
	if err != nil {
		// бизнес-ошибки уже залогированы и отвечены в usecase
		if domain.IsBusinessError(err) {
			return nil
		}
		s.Log.Error("failed to handle command",
			"error", err,
			"command", command,
			"chat_id", message.Chat.ID,
			"update_id", updateID,
		)
		return fmt.Errorf("failed to handle command %q: %w", command, err)
	}

	return nil
}

// handleCallback обрабатывает нажатие inline-кнопки
func (s *Service) handleCallback(ctx context.Context, query *domain.CallbackQuery, updateID int64) error {
	if query.From != nil && query.From.IsBot {
		s.Log.Debug("ignoring callback from bot", "update_id", updateID)
		return nil
	}

	err := s.BotService.HandleCallback(ctx, query, updateID)
	if err != nil {
		if domain.IsBusinessError(err) {
			return nil
		}
		s.Log.Error("failed to handle callback",
			"error", err,
			"callback_id", query.ID,
			"update_id", updateID,
		)
		return fmt.Errorf("failed to handle callback: %w", err)
	}

	return nil
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
