package webhook

type Config struct {
	EventsURL string `envconfig:"EVENTS_URL"` // события о созданных платежах
	ChatURL   string `envconfig:"CHAT_URL"`   // chat-webhook для подтверждений, {"content": текст}
}
