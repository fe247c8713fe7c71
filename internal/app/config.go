package app

import (
	"fmt"
	"time"

	server "github.com/WazzyDev/PushinPaybot/internal/adapters/primary/http"
	"github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/pushinpay"
	"github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/telegram"
	webhookAdapter "github.com/WazzyDev/PushinPaybot/internal/adapters/secondary/webhook"
	"github.com/WazzyDev/PushinPaybot/internal/domain"
	"github.com/WazzyDev/PushinPaybot/internal/pkg/logger"
	"github.com/WazzyDev/PushinPaybot/internal/services/notifier"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Log        *logger.Config         `envconfig:"LOG"`
	Server     *server.Config         `envconfig:"APISERVER"`
	Telegram   *telegram.Config       `envconfig:"TELEGRAM"`
	PushinPay  *pushinpay.Config      `envconfig:"PUSHINPAY"`
	Webhook    *webhookAdapter.Config `envconfig:"WEBHOOK"`
	Notifier   *notifier.Config       `envconfig:"NOTIFY"`
	Shop       ShopConfig             `envconfig:"SHOP"`
	Registry   RegistryConfig         `envconfig:"REGISTRY"`
	Plans      PlansConfig            `envconfig:"PLANS"`
	Broadcasts BroadcastsConfig       `envconfig:"BROADCASTS"`
	Buttons    ButtonsConfig          `envconfig:"BUTTONS"`
}

// ShopConfig настройки витрины и её текстов
type ShopConfig struct {
	CatalogCaption   string `envconfig:"CATALOG_CAPTION"`
	PaymentCaption   string `envconfig:"PAYMENT_CAPTION"`    // три %s: план, цена, pix-код
	CatalogImagePath string `envconfig:"CATALOG_IMAGE_PATH"` // картинка каталога и рассылок
}

// RegistryConfig настройки очистки реестра ожидающих платежей
type RegistryConfig struct {
	TTL           time.Duration `envconfig:"TTL" default:"0"` // 0 — очистка выключена
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"10m"`
}

// PlansConfig конфигурация планов подписки
type PlansConfig struct {
	Count int          `envconfig:"COUNT" default:"0"`
	List  []PlanConfig `envconfig:"-"` // Игнорируем envconfig, загружаем вручную
}

// PlanConfig один план подписки
type PlanConfig struct {
	Key   string `envconfig:"KEY" required:"true"`   // SHOP_BOT_PLANS_0_KEY, ...
	Name  string `envconfig:"NAME" required:"true"`  // SHOP_BOT_PLANS_0_NAME, ...
	Price string `envconfig:"PRICE" required:"true"` // "19,90" либо "19.90"
}

// Load загружает планы из переменных окружения по индексированным префиксам
func (pc *PlansConfig) Load(envPrefix string) error {
	pc.List = make([]PlanConfig, pc.Count)
	for i := 0; i < pc.Count; i++ {
		prefix := fmt.Sprintf("%s_PLANS_%d", envPrefix, i)
		var plan PlanConfig
		if err := envconfig.Process(prefix, &plan); err != nil {
			return fmt.Errorf("failed to load plan %d: %w", i, err)
		}
		pc.List[i] = plan
	}
	return nil
}

// ToDomain конвертирует планы в доменные, сохраняя порядок каталога
func (pc *PlansConfig) ToDomain() []domain.Plan {
	plans := make([]domain.Plan, 0, len(pc.List))
	for _, plan := range pc.List {
		plans = append(plans, domain.Plan{
			Key:   plan.Key,
			Name:  plan.Name,
			Price: plan.Price,
		})
	}
	return plans
}

// BroadcastsConfig конфигурация рекламных рассылок
type BroadcastsConfig struct {
	AudienceChatID int64             `envconfig:"AUDIENCE_CHAT_ID"` // 0 — рассылки выключены
	Count          int               `envconfig:"COUNT" default:"0"`
	List           []BroadcastConfig `envconfig:"-"`
}

// BroadcastConfig одна рассылка
type BroadcastConfig struct {
	Caption  string        `envconfig:"CAPTION" required:"true"` // SHOP_BOT_BROADCASTS_0_CAPTION, ...
	Interval time.Duration `envconfig:"INTERVAL" default:"1h"`
}

// Load загружает рассылки из переменных окружения по индексированным префиксам
func (bc *BroadcastsConfig) Load(envPrefix string) error {
	bc.List = make([]BroadcastConfig, bc.Count)
	for i := 0; i < bc.Count; i++ {
		prefix := fmt.Sprintf("%s_BROADCASTS_%d", envPrefix, i)
		var broadcast BroadcastConfig
		if err := envconfig.Process(prefix, &broadcast); err != nil {
			return fmt.Errorf("failed to load broadcast %d: %w", i, err)
		}
		bc.List[i] = broadcast
	}
	return nil
}

// ButtonsConfig конфигурация URL-кнопок каталога и рассылок
type ButtonsConfig struct {
	Count int            `envconfig:"COUNT" default:"0"`
	List  []ButtonConfig `envconfig:"-"`
}

// ButtonConfig одна URL-кнопка
type ButtonConfig struct {
	Text string `envconfig:"TEXT" required:"true"` // SHOP_BOT_BUTTONS_0_TEXT, ...
	URL  string `envconfig:"URL" required:"true"`
}

// Load загружает кнопки из переменных окружения по индексированным префиксам
func (bc *ButtonsConfig) Load(envPrefix string) error {
	bc.List = make([]ButtonConfig, bc.Count)
	for i := 0; i < bc.Count; i++ {
		prefix := fmt.Sprintf("%s_BUTTONS_%d", envPrefix, i)
		var button ButtonConfig
		if err := envconfig.Process(prefix, &button); err != nil {
			return fmt.Errorf("failed to load button %d: %w", i, err)
		}
		bc.List[i] = button
	}
	return nil
}

// ToDomain конвертирует кнопки в доменные
func (bc *ButtonsConfig) ToDomain() []domain.LinkButton {
	buttons := make([]domain.LinkButton, 0, len(bc.List))
	for _, button := range bc.List {
		buttons = append(buttons, domain.LinkButton{Text: button.Text, URL: button.URL})
	}
	return buttons
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// Списки загружаем вручную (envconfig не умеет определять размер слайса)
	if err := cfg.Plans.Load(envPrefix); err != nil {
		return nil, fmt.Errorf("failed to load plans config: %w", err)
	}
	if err := cfg.Broadcasts.Load(envPrefix); err != nil {
		return nil, fmt.Errorf("failed to load broadcasts config: %w", err)
	}
	if err := cfg.Buttons.Load(envPrefix); err != nil {
		return nil, fmt.Errorf("failed to load buttons config: %w", err)
	}

	if len(cfg.Plans.List) == 0 {
		return nil, fmt.Errorf("no plans configured: at least one plan must be specified via PLANS_COUNT and PLANS_0_* environment variables")
	}

	return cfg, nil
}
