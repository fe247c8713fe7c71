package texts

import "fmt"

// Тексты для покупателя. Витрина работает на бразильскую аудиторию (PIX),
// поэтому дефолты на португальском; caption каталога и броадкастов
// переопределяются конфигурацией.
const (
	DefaultCatalogCaption = "Escolha um plano abaixo para gerar o pagamento PIX."

	PaymentGeneratedAnswer = "Pagamento para %s gerado!"

	PaymentCaption = "🧾 Pagamento gerado com sucesso!\n\n" +
		"🎁 Plano: %s\n" +
		"💰 Valor: R$%s\n\n" +
		"💳 Chave Pix (copia e cola):\n%s\n\n" +
		"📸 Escaneie o QR Code acima com seu aplicativo bancário.\n\n" +
		"⚠️ Após o pagamento, clique no botão abaixo para verificar se já foi confirmado."

	PaymentConfirmed = "✅ Pagamento confirmado!\nPlano: %s\nID: %s\nObrigado pela sua compra."

	StatusSettled    = "✅ Pagamento confirmado!"
	StatusPending    = "⏳ Pagamento ainda não confirmado."
	StatusOther      = "❌ Status do pagamento: %s"
	CheckButtonLabel = "🔄 Verificar pagamento"

	InvalidPlanAnswer       = "Plano inválido."
	InvalidPriceAnswer      = "Preço do plano inválido."
	PaymentFailedAnswer     = "Erro ao gerar pagamento, tente novamente."
	StatusCheckFailedAnswer = "Erro ao consultar status. Tente mais tarde."

	UnknownCommand = "Comando desconhecido. Use /start para ver os planos."
)

// FormatPlanButton подпись кнопки плана в каталоге
func FormatPlanButton(name, price string) string {
	return fmt.Sprintf("%s (R$%s)", name, price)
}

// FormatPaymentCaption подпись под QR-кодом платежа
func FormatPaymentCaption(planName, price, pixCode string) string {
	return fmt.Sprintf(PaymentCaption, planName, price, pixCode)
}

// FormatPaymentGenerated ответ на callback после создания платежа
func FormatPaymentGenerated(planName string) string {
	return fmt.Sprintf(PaymentGeneratedAnswer, planName)
}

// FormatPaymentConfirmed текст подтверждения для всех трёх направлений рассылки
func FormatPaymentConfirmed(planName, paymentID string) string {
	return fmt.Sprintf(PaymentConfirmed, planName, paymentID)
}

// FormatStatusOther статус, не являющийся ни оплаченным, ни ожидающим
func FormatStatusOther(status string) string {
	return fmt.Sprintf(StatusOther, status)
}
