package pushinpay

type Config struct {
	BaseURL    string `envconfig:"BASE_URL" default:"https://api.pushinpay.com.br/api"`
	Token      string `envconfig:"TOKEN" required:"true"`
	WebhookURL string `envconfig:"WEBHOOK_URL"` // куда провайдер шлёт подтверждения
}
