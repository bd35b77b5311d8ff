package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propelrent/rentwise/internal/api/metrics"
	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

// TenantHandler handles the admin tenant list and its add/edit form.
type TenantHandler struct {
	service ports.TenantService
}

func NewTenantHandler(service ports.TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// List handles GET /v1/admin/tenants.
//
// @Summary      List tenants
// @Tags         tenants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[tenantResponse]
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/tenants [get]
func (h *TenantHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]tenantResponse, 0, len(views))
	for _, v := range views {
		data = append(data, toTenantResponse(v))
	}
	return c.JSON(http.StatusOK, listResponse[tenantResponse]{Data: data, Total: len(data)})
}

// New handles GET /v1/admin/tenants/new and returns the blank add form.
//
// @Summary      Blank tenant form
// @Tags         tenants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tenantFormResponse
// @Router       /v1/admin/tenants/new [get]
func (h *TenantHandler) New(c echo.Context) error {
	return c.JSON(http.StatusOK, toTenantForm(domain.NewTenantDraft()))
}

// Get handles GET /v1/admin/tenants/:id.
//
// @Summary      Get a tenant
// @Tags         tenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tenant ID"
// @Success      200  {object}  tenantResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/tenants/{id} [get]
func (h *TenantHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	v, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTenantResponse(*v))
}

// Create handles POST /v1/admin/tenants. The tenant is appended to the list
// and linked to its property.
//
// @Summary      Add a tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tenantRequest  true  "Tenant form"
// @Success      201   {object}  tenantResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/tenants [post]
func (h *TenantHandler) Create(c echo.Context) error {
	var req tenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	v, err := h.service.Create(c.Request().Context(), toTenantDraft(req))
	if err != nil {
		return err
	}

	metrics.ListingChangesTotal.WithLabelValues("tenant", "create").Inc()
	return c.JSON(http.StatusCreated, toTenantResponse(*v))
}

// Update handles PUT /v1/admin/tenants/:id. Moving a tenant to another
// property vacates the old one.
//
// @Summary      Edit a tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Tenant ID"
// @Param        body  body      tenantRequest  true  "Tenant form"
// @Success      200   {object}  tenantResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/tenants/{id} [put]
func (h *TenantHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req tenantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	v, err := h.service.Update(c.Request().Context(), id, toTenantDraft(req))
	if err != nil {
		return err
	}

	metrics.ListingChangesTotal.WithLabelValues("tenant", "update").Inc()
	return c.JSON(http.StatusOK, toTenantResponse(*v))
}

// Delete handles DELETE /v1/admin/tenants/:id and vacates the tenant's property.
//
// @Summary      Delete a tenant
// @Tags         tenants
// @Security     BearerAuth
// @Param        id   path  int  true  "Tenant ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/tenants/{id} [delete]
func (h *TenantHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ListingChangesTotal.WithLabelValues("tenant", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
