package payment

import "github.com/WazzyDev/PushinPaybot/internal/domain"

// notificationDTO входящее уведомление от провайдера.
// Id транзакции приходит под разными именами в зависимости от версии API
type notificationDTO struct {
	ID             string `json:"id"`
	PaymentIDCamel string `json:"paymentId"`
	PaymentIDSnake string `json:"payment_id"`
	Status         string `json:"status"`
}

// paymentID возвращает id по первому непустому алиасу
func (n *notificationDTO) paymentID() string {
	switch {
	case n.ID != "":
		return n.ID
	case n.PaymentIDCamel != "":
		return n.PaymentIDCamel
	default:
		return n.PaymentIDSnake
	}
}

// status типизированный статус из уведомления
func (n *notificationDTO) status() domain.PaymentStatus {
	return domain.PaymentStatus(n.Status)
}
