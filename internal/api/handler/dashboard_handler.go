package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postosaude/clinic-api/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /stats/dashboard.
//
// @Summary      Home screen counters
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /stats/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	stats, err := h.service.Stats(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
