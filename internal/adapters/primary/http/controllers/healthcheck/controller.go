package healthcheckController

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/WazzyDev/PushinPaybot/internal/ports/registry"
)

type HealthCheckController struct {
	pending registry.IPendingPayments
	log     *slog.Logger
}

func New(pending registry.IPendingPayments, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		pending: pending,
		log:     log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status": "ok",
	})
}

// ready готовность + число платежей в ожидании подтверждения
func (c *HealthCheckController) ready(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status":           "ready",
		"pending_payments": c.pending.Len(),
	})
}
