package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propelrent/rentwise/internal/api/metrics"
	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

// PropertyHandler handles the admin property list and its add/edit form.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /v1/admin/properties.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[propertyResponse]
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]propertyResponse, 0, len(views))
	for _, v := range views {
		data = append(data, toPropertyResponse(v))
	}
	return c.JSON(http.StatusOK, listResponse[propertyResponse]{Data: data, Total: len(data)})
}

// New handles GET /v1/admin/properties/new and returns the blank add form.
//
// @Summary      Blank property form
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  propertyFormResponse
// @Router       /v1/admin/properties/new [get]
func (h *PropertyHandler) New(c echo.Context) error {
	return c.JSON(http.StatusOK, toPropertyForm(domain.NewPropertyDraft()))
}

// Get handles GET /v1/admin/properties/:id.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Property ID"
// @Success      200  {object}  propertyResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	v, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(*v))
}

// Create handles POST /v1/admin/properties. The property is appended to the list.
//
// @Summary      Add a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      propertyRequest  true  "Property form"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	v, err := h.service.Create(c.Request().Context(), toPropertyDraft(req))
	if err != nil {
		return err
	}

	metrics.ListingChangesTotal.WithLabelValues("property", "create").Inc()
	return c.JSON(http.StatusCreated, toPropertyResponse(*v))
}

// Update handles PUT /v1/admin/properties/:id. The record keeps its position.
//
// @Summary      Edit a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Property ID"
// @Param        body  body      propertyRequest  true  "Property form"
// @Success      200   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	v, err := h.service.Update(c.Request().Context(), id, toPropertyDraft(req))
	if err != nil {
		return err
	}

	metrics.ListingChangesTotal.WithLabelValues("property", "update").Inc()
	return c.JSON(http.StatusOK, toPropertyResponse(*v))
}

// Delete handles DELETE /v1/admin/properties/:id.
//
// @Summary      Delete a property
// @Tags         properties
// @Security     BearerAuth
// @Param        id   path  int  true  "Property ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/admin/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ListingChangesTotal.WithLabelValues("property", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
