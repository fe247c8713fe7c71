package pushinpay

// cashInRequest тело POST /pix/cashIn
type cashInRequest struct {
	Value      int64         `json:"value"` // сентаво
	WebhookURL string        `json:"webhook_url"`
	SplitRules []interface{} `json:"split_rules"`
}

// cashInResponse ответ провайдера на создание платежа.
// Payload с PIX-кодом приходит под разными именами в зависимости от версии API
type cashInResponse struct {
	ID      string `json:"id"`
	PixCode string `json:"pix_code"`
	Payload string `json:"payload"`
	QRCode  string `json:"qr_code"`
}

// transactionResponse ответ GET /transactions/{id}
type transactionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
