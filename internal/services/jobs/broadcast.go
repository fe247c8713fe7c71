package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	tgPort "github.com/WazzyDev/PushinPaybot/internal/ports/telegram"
)

// maxBroadcastButtons лимит URL-кнопок под рекламным сообщением
const maxBroadcastButtons = 3

// BroadcastJob джоба рекламной рассылки: шлёт промо-фото с кнопками
// в чат аудитории с фиксированным интервалом
type BroadcastJob struct {
	broadcast      domain.Broadcast
	photo          []byte
	audienceChatID int64
	telegramClient tgPort.IClient
	log            *slog.Logger
}

func NewBroadcastJob(
	broadcast domain.Broadcast,
	photo []byte,
	audienceChatID int64,
	telegramClient tgPort.IClient,
	log *slog.Logger,
) *BroadcastJob {
	return &BroadcastJob{
		broadcast:      broadcast,
		photo:          photo,
		audienceChatID: audienceChatID,
		telegramClient: telegramClient,
		log:            log,
	}
}

func (j *BroadcastJob) Name() string {
	return "broadcast-" + j.broadcast.Key
}

// NextRun через фиксированный интервал от текущего момента
func (j *BroadcastJob) NextRun(now time.Time) time.Time {
	return now.Add(j.broadcast.Interval)
}

func (j *BroadcastJob) Run(ctx context.Context) error {
	keyboard := j.keyboard()

	if len(j.photo) > 0 {
		if err := j.telegramClient.SendPhoto(ctx, j.audienceChatID, j.photo, "promo.png", j.broadcast.Caption, keyboard); err != nil {
			return fmt.Errorf("failed to send broadcast photo: %w", err)
		}
	} else {
		if err := j.telegramClient.SendMessageWithKeyboard(ctx, j.audienceChatID, j.broadcast.Caption, keyboard); err != nil {
			return fmt.Errorf("failed to send broadcast message: %w", err)
		}
	}

	j.log.Info("broadcast sent",
		"broadcast", j.broadcast.Key,
		"chat_id", j.audienceChatID,
	)

	return nil
}

// keyboard до трёх URL-кнопок, по одной в ряд; nil если кнопок нет
func (j *BroadcastJob) keyboard() map[string]interface{} {
	buttons := j.broadcast.Buttons
	if len(buttons) > maxBroadcastButtons {
		buttons = buttons[:maxBroadcastButtons]
	}
	if len(buttons) == 0 {
		return nil
	}

	rows := make([][]tgPort.InlineButton, 0, len(buttons))
	for _, button := range buttons {
		rows = append(rows, []tgPort.InlineButton{{Text: button.Text, URL: button.URL}})
	}

	return tgPort.InlineKeyboard(rows...)
}
