package payment

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	"github.com/WazzyDev/PushinPaybot/internal/ports/registry"
	"github.com/WazzyDev/PushinPaybot/internal/ports/service"
)

// Controller принимает уведомления о статусе платежа от провайдера
type Controller struct {
	pending  registry.IPendingPayments
	notifier service.INotifier
	log      *slog.Logger
}

func New(pending registry.IPendingPayments, notifier service.INotifier, log *slog.Logger) *Controller {
	return &Controller{
		pending:  pending,
		notifier: notifier,
		log:      log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhook", c.handleNotification)
}

// handleNotification обрабатывает push-уведомление провайдера.
// Без id транзакции — 400. С id всегда 200, нашлась запись или нет:
// иначе провайдер продолжит ретраить доставку
func (c *Controller) handleNotification(ctx *gin.Context) {
	var notification notificationDTO

	if err := ctx.ShouldBindJSON(&notification); err != nil {
		c.log.Error("failed to bind webhook notification",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	paymentID := notification.paymentID()
	if paymentID == "" {
		c.log.Warn("webhook notification rejected",
			"error", domain.ErrNoPaymentID,
			"status", notification.Status,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrNoPaymentID.Error()})
		return
	}

	c.log.Info("webhook notification received",
		"payment_id", paymentID,
		"status", notification.Status,
	)

	// Уведомляем только по точному CONFIRMED. Ручная перепроверка статуса
	// принимает и PAID — асимметрия провайдера, оставлена как есть
	if notification.status() == domain.PaymentStatusConfirmed {
		if pending, ok := c.pending.Take(paymentID); ok {
			c.notifier.PaymentConfirmed(ctx.Request.Context(), paymentID, pending)
		} else {
			c.log.Debug("confirmation for unknown or already processed payment",
				"payment_id", paymentID,
			)
		}
	}

	ctx.String(http.StatusOK, "OK")
}
