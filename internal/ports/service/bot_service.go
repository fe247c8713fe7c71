package service

import (
	"context"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
)

// IBotService интерфейс для бизнес-логики бота
type IBotService interface {
	HandleCommand(ctx context.Context, chatID int64, command string, updateID int64) error
	HandleCallback(ctx context.Context, query *domain.CallbackQuery, updateID int64) error
}
