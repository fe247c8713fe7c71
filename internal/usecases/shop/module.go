package shop

import (
	"log/slog"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	paymentPort "github.com/WazzyDev/PushinPaybot/internal/ports/payment"
	"github.com/WazzyDev/PushinPaybot/internal/ports/qr"
	"github.com/WazzyDev/PushinPaybot/internal/ports/registry"
	"github.com/WazzyDev/PushinPaybot/internal/ports/service"
	"github.com/WazzyDev/PushinPaybot/internal/ports/telegram"
)

// Config настройки витрины
type Config struct {
	CatalogCaption string              // подпись каталога; пустая — дефолт из texts
	PaymentCaption string              // шаблон подписи под QR, три %s: план, цена, pix-код
	ExtraButtons   []domain.LinkButton // URL-кнопки под кнопками планов
}

// Service бизнес-логика бота-витрины: каталог планов, создание PIX-платежа,
// ручная перепроверка статуса
type Service struct {
	cfg            *Config
	plans          []domain.Plan          // порядок кнопок каталога
	plansByKey     map[string]domain.Plan // callback data → план
	catalogPhoto   []byte                 // картинка каталога, читается один раз на старте
	gateway        paymentPort.IGateway
	pending        registry.IPendingPayments
	eventWebhook   service.IEventWebhook
	qrEncoder      qr.IEncoder
	telegramClient telegram.IClient
	log            *slog.Logger
}

// New создаёт сервис витрины
func New(
	cfg *Config,
	plans []domain.Plan,
	catalogPhoto []byte,
	gateway paymentPort.IGateway,
	pending registry.IPendingPayments,
	eventWebhook service.IEventWebhook,
	qrEncoder qr.IEncoder,
	telegramClient telegram.IClient,
	log *slog.Logger,
) *Service {
	plansByKey := make(map[string]domain.Plan, len(plans))
	for _, plan := range plans {
		plansByKey[plan.Key] = plan
	}

	if cfg == nil {
		cfg = &Config{}
	}

	return &Service{
		cfg:            cfg,
		plans:          plans,
		plansByKey:     plansByKey,
		catalogPhoto:   catalogPhoto,
		gateway:        gateway,
		pending:        pending,
		eventWebhook:   eventWebhook,
		qrEncoder:      qrEncoder,
		telegramClient: telegramClient,
		log:            log,
	}
}
