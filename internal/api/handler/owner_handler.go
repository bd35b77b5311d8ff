package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propelrent/rentwise/internal/core/ports"
)

// OwnerHandler proxies the external owner directory.
type OwnerHandler struct {
	directory ports.OwnerDirectory
}

func NewOwnerHandler(directory ports.OwnerDirectory) *OwnerHandler {
	return &OwnerHandler{directory: directory}
}

// List handles GET /v1/admin/owners.
//
// @Summary      List owners
// @Tags         owners
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[ownerResponse]
// @Failure      502  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/admin/owners [get]
func (h *OwnerHandler) List(c echo.Context) error {
	owners, err := h.directory.ListOwners(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]ownerResponse, 0, len(owners))
	for _, o := range owners {
		data = append(data, ownerResponse{ID: o.ID, Name: o.Name})
	}
	return c.JSON(http.StatusOK, listResponse[ownerResponse]{Data: data, Total: len(data)})
}
