package telegram

import (
	"log/slog"

	"github.com/WazzyDev/PushinPaybot/internal/ports/service"
)

type Service struct {
	BotService service.IBotService
	Log        *slog.Logger
}

func New(botService service.IBotService, log *slog.Logger) *Service {
	return &Service{
		BotService: botService,
		Log:        log,
	}
}
