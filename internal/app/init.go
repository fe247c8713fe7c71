package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	server "github.com/WazzyDev/PushinPaybot/internal/adapters/primary/http"
	healthcheckController "github.com/WazzyDev/PushinPaybot/internal/adapters/primary/http/controllers/healthcheck"
	paymentController "github.com/WazzyDev/PushinPaybot/internal/adapters/primary/http/controllers/payment"
	"github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/pushinpay"
	qrAdapter "github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/qr"
	"github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/storage/inmemory"
	tgAdapter "github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/telegram"
	webhookAdapter "github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/webhook"
	"github.com/WazzyDev/PushinPaybot/internal/domain"
	"github.com/WazzyDev/PushinPaybot/internal/ports/registry"
	jobScheduler "github.com/WazzyDev/PushinPaybot/internal/services/jobs"
	notifierService "github.com/WazzyDev/PushinPaybot/internal/services/notifier"
	telegramService "github.com/WazzyDev/PushinPaybot/internal/services/telegram"
	shopUsecase "github.com/WazzyDev/PushinPaybot/internal/usecases/shop"
)

type Dependencies struct {
	HTTPServer      *http.Server
	TelegramService *telegramService.Service
	TelegramPoller  *tgAdapter.Poller
	PendingRegistry registry.IPendingPayments
	JobScheduler    *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	if a.Cfg.Telegram == nil || a.Cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}
	if a.Cfg.PushinPay == nil || a.Cfg.PushinPay.Token == "" {
		return nil, fmt.Errorf("pushinpay token is required")
	}

	pendingRegistry := inmemory.NewPendingRegistry()

	telegramClient := tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)
	if err := a.registerBotCommands(ctx, telegramClient); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	gateway := pushinpay.NewClient(a.Cfg.PushinPay, a.Log)
	eventWebhook := webhookAdapter.NewClient(a.Cfg.Webhook, a.Log)
	qrEncoder := qrAdapter.NewEncoder()

	catalogPhoto := a.loadCatalogPhoto()

	shopService := shopUsecase.New(
		&shopUsecase.Config{
			CatalogCaption: a.Cfg.Shop.CatalogCaption,
			PaymentCaption: a.Cfg.Shop.PaymentCaption,
			ExtraButtons:   a.Cfg.Buttons.ToDomain(),
		},
		a.Cfg.Plans.ToDomain(),
		catalogPhoto,
		gateway,
		pendingRegistry,
		eventWebhook,
		qrEncoder,
		telegramClient,
		a.Log,
	)

	notifier := notifierService.New(a.Cfg.Notifier, telegramClient, eventWebhook, a.Log)
	tgService := telegramService.New(shopService, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log,
		healthcheckController.New(pendingRegistry, a.Log),
		paymentController.New(pendingRegistry, notifier, a.Log),
	)

	poller := a.initPolling(tgService, telegramClient)
	scheduler := a.initJobScheduler(telegramClient, pendingRegistry, catalogPhoto)

	return &Dependencies{
		HTTPServer:      httpServer,
		TelegramService: tgService,
		TelegramPoller:  poller,
		PendingRegistry: pendingRegistry,
		JobScheduler:    scheduler,
	}, nil
}

// loadCatalogPhoto читает картинку каталога один раз на старте; без неё
// каталог и рассылки уходят текстом
func (a *App) loadCatalogPhoto() []byte {
	if a.Cfg.Shop.CatalogImagePath == "" {
		return nil
	}

	photo, err := os.ReadFile(a.Cfg.Shop.CatalogImagePath)
	if err != nil {
		a.Log.Warn("failed to read catalog image, continuing without it",
			"error", err,
			"path", a.Cfg.Shop.CatalogImagePath,
		)
		return nil
	}

	a.Log.Info("catalog image loaded",
		"path", a.Cfg.Shop.CatalogImagePath,
		"size_bytes", len(photo),
	)
	return photo
}

// initPolling инициализирует long polling обновлений Telegram
func (a *App) initPolling(tgService *telegramService.Service, telegramClient *tgAdapter.Client) *tgAdapter.Poller {
	handler := func(ctx context.Context, update *domain.Update) error {
		return tgService.HandleUpdate(ctx, update)
	}

	return tgAdapter.NewPoller(telegramClient, a.Cfg.Telegram, handler, a.Log)
}

// initJobScheduler инициализирует планировщик: рекламные рассылки и очистку реестра
func (a *App) initJobScheduler(
	telegramClient *tgAdapter.Client,
	pendingRegistry registry.IPendingPayments,
	promoPhoto []byte,
) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log)

	if a.Cfg.Broadcasts.AudienceChatID != 0 {
		buttons := a.Cfg.Buttons.ToDomain()
		for i, broadcastCfg := range a.Cfg.Broadcasts.List {
			broadcast := domain.Broadcast{
				Key:      fmt.Sprintf("%d", i),
				Caption:  broadcastCfg.Caption,
				Interval: broadcastCfg.Interval,
				Buttons:  buttons,
			}
			scheduler.Register(jobScheduler.NewBroadcastJob(
				broadcast,
				promoPhoto,
				a.Cfg.Broadcasts.AudienceChatID,
				telegramClient,
				a.Log,
			))
		}
		a.Log.Info("broadcast jobs registered", "count", len(a.Cfg.Broadcasts.List))
	} else if len(a.Cfg.Broadcasts.List) > 0 {
		a.Log.Warn("broadcasts configured but audience chat id is not set, skipping")
	}

	if a.Cfg.Registry.TTL > 0 {
		scheduler.Register(jobScheduler.NewRegistrySweeper(
			pendingRegistry,
			a.Cfg.Registry.TTL,
			a.Cfg.Registry.SweepInterval,
			a.Log,
		))
		a.Log.Info("registry sweeper job registered",
			"ttl", a.Cfg.Registry.TTL,
			"sweep_interval", a.Cfg.Registry.SweepInterval,
		)
	}

	return scheduler
}

// registerBotCommands регистрирует команды бота в Telegram
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Ver planos disponíveis"},
	}

	return client.SetMyCommands(ctx, commands)
}
