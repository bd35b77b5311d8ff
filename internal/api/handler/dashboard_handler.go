package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propelrent/rentwise/internal/core/ports"
)

// DashboardHandler serves the welcome screen and both dashboards.
type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Welcome handles GET /v1/welcome.
//
// @Summary      Welcome screen
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  welcomeResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/welcome [get]
func (h *DashboardHandler) Welcome(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.dashboards.Welcome(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWelcomeResponse(view))
}

// Admin handles GET /v1/admin/dashboard.
//
// @Summary      Admin overview
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminDashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/admin/dashboard [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	d, err := h.dashboards.Admin(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminDashboardResponse(d))
}

// Tenant handles GET /v1/tenant/dashboard.
//
// @Summary      Tenant portal
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tenantDashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/tenant/dashboard [get]
func (h *DashboardHandler) Tenant(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	d, err := h.dashboards.Tenant(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTenantDashboardResponse(d))
}
