package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/api/http/presenter"
	"github.com/artem13815/interview/pkg/health"
)

const readyTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

type readyResponse struct {
	Status string        `json:"status"`
	Checks health.Report `json:"checks"`
}

// Health
// @Summary Проверка живости
// @Tags    Служебное
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ok"})
}

// Ready
// @Summary     Готовность хранилищ
// @Description Опрашивает все настроенные хранилища: Postgres, Redis, каталог состояния.
// @Tags        Служебное
// @Produce     json
// @Success     200 {object} readyResponse
// @Failure     503 {object} readyResponse
// @Router      /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), readyTimeout)
	defer cancel()
	rep, err := h.svc.Ready(ctx)
	if err != nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, readyResponse{Status: "not_ready", Checks: rep})
	}
	return presenter.JSON(c, http.StatusOK, readyResponse{Status: "ready", Checks: rep})
}
